// Package testutil provides shared fixtures for tests: a small salon corpus
// and an in-memory reservation ledger.
package testutil

import "github.com/hikarisalon/concierge/internal/domain"

// SampleFacts returns the salon fact corpus used across tests.
func SampleFacts() []domain.KnowledgeFact {
	return []domain.KnowledgeFact{
		{Key: "SALON_NAME", Value: "サロンAI"},
		{Key: "ADDRESS", Value: "東京都渋谷区神南1-2-3"},
		{Key: "PHONE", Value: "03-1234-5678"},
		{Key: "ACCESS_STATION", Value: "渋谷駅"},
		{Key: "PARKING", Value: "近隣のコインパーキングをご利用ください"},
		{Key: "HOLIDAY", Value: "毎週火曜日"},
		{Key: "BUSINESS_HOURS_WEEKDAY", Value: "10:00-19:00"},
		{Key: "BUSINESS_HOURS_WEEKEND", Value: "10:00-18:00"},
	}
}

// SampleEntries returns the FAQ corpus used across tests.
func SampleEntries() []domain.FAQEntry {
	return []domain.FAQEntry{
		{
			Question:       "営業時間を教えてください",
			AnswerTemplate: "平日は{BUSINESS_HOURS_WEEKDAY}、土日は{BUSINESS_HOURS_WEEKEND}に営業しております。",
			Category:       "hours",
		},
		{
			Question:       "定休日はいつですか",
			AnswerTemplate: "定休日は{HOLIDAY}です。",
			Category:       "hours",
		},
		{
			Question:       "駐車場はありますか",
			AnswerTemplate: "{PARKING}。",
			Category:       "access",
		},
		{
			Question:       "お店の場所を教えてください",
			AnswerTemplate: "{SALON_NAME}は{ADDRESS}にございます。最寄り駅は{ACCESS_STATION}です。",
			Category:       "access",
		},
		{
			Question:       "電話番号を教えてください",
			AnswerTemplate: "お電話は{PHONE}までお願いいたします。",
			Category:       "contact",
		},
	}
}
