package main

import (
	"fmt"

	"lucky-money/pkg/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func recalcGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recalc-goals",
		Short: "Rebuild the cached goal totals from completed donations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, log, err := connect()
			if err != nil {
				return err
			}

			changed, err := recalcGoals(db)
			if err != nil {
				return err
			}
			log.Info("Recalculated goal totals, %d changed", changed)
			return nil
		},
	}
}

type donationAmount struct {
	GoalID string
	Amount decimal.Decimal
}

// recalcGoals overwrites goals.current_amount with the sum of COMPLETED
// donations and returns how many goals were out of step.
func recalcGoals(db *gorm.DB) (int, error) {
	changed := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		var goals []models.Goal
		if err := tx.Find(&goals).Error; err != nil {
			return err
		}

		var rows []donationAmount
		err := tx.Model(&models.Donation{}).
			Select("goal_id", "amount").
			Where("status = ? AND goal_id IS NOT NULL", models.DonationCompleted).
			Find(&rows).Error
		if err != nil {
			return err
		}

		totals := make(map[string]decimal.Decimal, len(goals))
		for _, row := range rows {
			totals[row.GoalID] = totals[row.GoalID].Add(row.Amount)
		}

		for _, goal := range goals {
			total := totals[goal.ID]
			if goal.CurrentAmount.Equal(total) {
				continue
			}
			err := tx.Model(&models.Goal{}).
				Where("id = ?", goal.ID).
				Update("current_amount", total).Error
			if err != nil {
				return err
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to recalculate goals: %w", err)
	}
	return changed, nil
}
