package persistent

import (
	"lucky-money/pkg/models"
	"lucky-money/services/donation/internal/entity"

	"gorm.io/datatypes"
)

func ToDonationEntity(m *models.Donation) *entity.Donation {
	if m == nil {
		return nil
	}

	return &entity.Donation{
		ID:          m.ID,
		Amount:      m.Amount,
		Message:     m.Message,
		Status:      entity.DonationStatus(m.Status),
		IsAnonymous: m.IsAnonymous,
		DonorName:   m.DonorName,
		DonorEmail:  m.DonorEmail,
		DonorPhone:  m.DonorPhone,
		UserID:      m.UserID,
		TypeID:      m.TypeID,
		GoalID:      m.GoalID,
		Type:        ToDonationTypeEntity(m.Type),
		Transaction: ToTransactionEntity(m.Transaction),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToDonationModel(e *entity.Donation) *models.Donation {
	if e == nil {
		return nil
	}

	return &models.Donation{
		ID:          e.ID,
		Amount:      e.Amount,
		Message:     e.Message,
		Status:      models.DonationStatus(e.Status),
		IsAnonymous: e.IsAnonymous,
		DonorName:   e.DonorName,
		DonorEmail:  e.DonorEmail,
		DonorPhone:  e.DonorPhone,
		UserID:      e.UserID,
		TypeID:      e.TypeID,
		GoalID:      e.GoalID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToTransactionEntity(m *models.Transaction) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          m.ID,
		DonationID:  m.DonationID,
		Provider:    m.Provider,
		Amount:      m.Amount,
		Status:      entity.DonationStatus(m.Status),
		IPNVerified: m.IPNVerified,
		Metadata:    map[string]interface{}(m.Metadata),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *models.Transaction {
	if e == nil {
		return nil
	}

	return &models.Transaction{
		ID:          e.ID,
		DonationID:  e.DonationID,
		Provider:    e.Provider,
		Amount:      e.Amount,
		Status:      models.DonationStatus(e.Status),
		IPNVerified: e.IPNVerified,
		Metadata:    toJSONMap(e.Metadata),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToDonationTypeEntity(m *models.DonationType) *entity.DonationType {
	if m == nil {
		return nil
	}

	return &entity.DonationType{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		SuggestedAmount: m.SuggestedAmount,
		Icon:            m.Icon,
		IsActive:        m.IsActive,
		DisplayOrder:    m.DisplayOrder,
	}
}

func ToGoalEntity(m *models.Goal) *entity.Goal {
	if m == nil {
		return nil
	}

	milestones := make([]*entity.Milestone, len(m.Milestones))
	for i := range m.Milestones {
		milestones[i] = ToMilestoneEntity(&m.Milestones[i])
	}

	return &entity.Goal{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		TargetAmount: m.TargetAmount,
		Status:       entity.GoalStatus(m.Status),
		Deadline:     m.Deadline,
		DisplayOrder: m.DisplayOrder,
		Milestones:   milestones,
		CreatedAt:    m.CreatedAt,
	}
}

func ToGoalModel(e *entity.Goal) *models.Goal {
	if e == nil {
		return nil
	}

	milestones := make([]models.GoalMilestone, len(e.Milestones))
	for i, ms := range e.Milestones {
		milestones[i] = *ToMilestoneModel(ms)
	}

	return &models.Goal{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		TargetAmount: e.TargetAmount,
		Status:       models.GoalStatus(e.Status),
		Deadline:     e.Deadline,
		DisplayOrder: e.DisplayOrder,
		Milestones:   milestones,
		CreatedAt:    e.CreatedAt,
	}
}

func ToMilestoneEntity(m *models.GoalMilestone) *entity.Milestone {
	return &entity.Milestone{
		ID:          m.ID,
		GoalID:      m.GoalID,
		Amount:      m.Amount,
		Description: m.Description,
		Achieved:    m.Achieved,
	}
}

func ToMilestoneModel(e *entity.Milestone) *models.GoalMilestone {
	return &models.GoalMilestone{
		ID:          e.ID,
		GoalID:      e.GoalID,
		Amount:      e.Amount,
		Description: e.Description,
		Achieved:    e.Achieved,
	}
}

func ToActivityEntity(m *models.Activity) *entity.Activity {
	if m == nil {
		return nil
	}

	return &entity.Activity{
		ID:        m.ID,
		Type:      entity.ActivityType(m.Type),
		Content:   m.Content,
		Metadata:  map[string]interface{}(m.Metadata),
		CreatedAt: m.CreatedAt,
	}
}

func ToActivityModel(e *entity.Activity) *models.Activity {
	if e == nil {
		return nil
	}

	return &models.Activity{
		ID:        e.ID,
		Type:      models.ActivityType(e.Type),
		Content:   e.Content,
		Metadata:  toJSONMap(e.Metadata),
		CreatedAt: e.CreatedAt,
	}
}

func toJSONMap(m map[string]interface{}) datatypes.JSONMap {
	if m == nil {
		return nil
	}
	return datatypes.JSONMap(m)
}
