package reservation

import (
	"strings"

	"github.com/hikarisalon/concierge/internal/domain"
)

// Services returns the bookable service catalog in match priority order.
// Matching is substring containment; the first entry found in the message
// wins.
func Services() []domain.ServiceCatalogEntry {
	return []domain.ServiceCatalogEntry{
		{Name: "カット", DurationMinutes: 60, Price: 3000},
		{Name: "カラー", DurationMinutes: 120, Price: 8000},
		{Name: "パーマ", DurationMinutes: 150, Price: 12000},
		{Name: "トリートメント", DurationMinutes: 90, Price: 5000},
	}
}

// Staff returns the staff roster in match priority order.
func Staff() []domain.StaffMember {
	return []domain.StaffMember{
		{Name: "田中", Specialty: "カット・カラー", ExperienceLabel: "スタイリスト歴10年"},
		{Name: "佐藤", Specialty: "パーマ", ExperienceLabel: "スタイリスト歴7年"},
		{Name: "山田", Specialty: "トリートメント", ExperienceLabel: "スタイリスト歴3年"},
	}
}

// noPreferenceKeywords mark the "no staff preference" sentinel selection.
var noPreferenceKeywords = []string{
	domain.StaffUnspecified,
	"おまかせ",
	"お任せ",
	"どなたでも",
	"誰でも",
}

// MatchService finds the first catalog service named in the message.
func MatchService(message string) (domain.ServiceCatalogEntry, bool) {
	for _, svc := range Services() {
		if strings.Contains(message, svc.Name) {
			return svc, true
		}
	}
	return domain.ServiceCatalogEntry{}, false
}

// ServiceByName looks up a service by its exact catalog name.
func ServiceByName(name string) (domain.ServiceCatalogEntry, bool) {
	for _, svc := range Services() {
		if svc.Name == name {
			return svc, true
		}
	}
	return domain.ServiceCatalogEntry{}, false
}

// MatchStaff finds the first staff member named in the message, or the
// unspecified sentinel when a no-preference keyword appears.
func MatchStaff(message string) (string, bool) {
	for _, member := range Staff() {
		if strings.Contains(message, member.Name) {
			return member.Name, true
		}
	}
	for _, kw := range noPreferenceKeywords {
		if strings.Contains(message, kw) {
			return domain.StaffUnspecified, true
		}
	}
	return "", false
}
