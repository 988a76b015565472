// Package vietqr builds VietQR bank transfer payloads. The QR image itself is
// rendered by the img.vietqr.io service; this package only builds its URL.
package vietqr

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	ImageBaseURL = "https://img.vietqr.io/image"

	DefaultTemplate = "compact"
	DefaultMemoTag  = "TRUN"

	// MemoIDLength is how many leading characters of the donation id the memo carries.
	MemoIDLength = 8
)

// Bank is the receiving account shown to donors.
type Bank struct {
	Code        string
	AccountNo   string
	AccountName string
}

// BankInfo holds the fields a donor copies into a banking app by hand.
type BankInfo struct {
	BankCode    string `json:"bank_code"`
	AccountNo   string `json:"account_no"`
	AccountName string `json:"account_name"`
	Amount      string `json:"amount"`
	Content     string `json:"content"`
}

type PaymentInfo struct {
	QRURL    string   `json:"qr_url"`
	BankInfo BankInfo `json:"bank_info"`
}

type Builder struct {
	bank     Bank
	template string
	memoTag  string
}

func NewBuilder(bank Bank, template, memoTag string) *Builder {
	if template == "" {
		template = DefaultTemplate
	}
	if memoTag == "" {
		memoTag = DefaultMemoTag
	}
	return &Builder{bank: bank, template: template, memoTag: memoTag}
}

// Build is a pure mapping from a donation to its payment payload.
func (b *Builder) Build(donationID string, amount decimal.Decimal) PaymentInfo {
	memo := BuildMemo(b.memoTag, donationID)
	return PaymentInfo{
		QRURL: b.ImageURL(amount, memo),
		BankInfo: BankInfo{
			BankCode:    b.bank.Code,
			AccountNo:   b.bank.AccountNo,
			AccountName: b.bank.AccountName,
			Amount:      amount.String(),
			Content:     memo,
		},
	}
}

// ImageURL fills the image service path template:
// {base}/{bank}-{account}-{template}.jpg?amount=&addInfo=&accountName=
func (b *Builder) ImageURL(amount decimal.Decimal, memo string) string {
	path := fmt.Sprintf("%s/%s-%s-%s.jpg",
		ImageBaseURL,
		url.PathEscape(b.bank.Code),
		url.PathEscape(b.bank.AccountNo),
		url.PathEscape(b.template),
	)

	q := url.Values{}
	if amount.IsPositive() {
		q.Set("amount", amount.String())
	}
	q.Set("addInfo", memo)
	q.Set("accountName", b.bank.AccountName)

	return path + "?" + q.Encode()
}

// MemoTag returns the tag prefixing every transfer memo.
func (b *Builder) MemoTag() string {
	return b.memoTag
}

// BuildMemo renders "<tag> <first 8 chars of id>".
func BuildMemo(tag, donationID string) string {
	return tag + " " + memoPrefix(donationID)
}

// ParseMemo finds the tag inside a bank statement line and returns the id
// prefix that follows it. Matching is case-insensitive because banks often
// upper-case the description.
func ParseMemo(tag, content string) (string, bool) {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tag) + `\s+([a-z0-9-]+)`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	prefix := strings.ToLower(m[1])
	if len(prefix) > MemoIDLength {
		prefix = prefix[:MemoIDLength]
	}
	return prefix, true
}

func memoPrefix(id string) string {
	if len(id) <= MemoIDLength {
		return id
	}
	return id[:MemoIDLength]
}
