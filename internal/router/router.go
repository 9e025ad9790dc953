// Package router classifies inbound messages when no booking dialogue is
// open. Matching is ordered keyword containment against fixed tables; the
// first table that matches decides the intent.
package router

import (
	"strings"

	"github.com/hikarisalon/concierge/internal/domain"
	"github.com/hikarisalon/concierge/internal/reservation"
)

// reservationKeywords start the booking dialogue from scratch. Deliberately
// narrow: broad words like 時間 or いつ stay with the FAQ pipeline, which
// answers them better than a booking prompt would.
var reservationKeywords = []string{"予約", "空き", "空いてる"}

// serviceInquiryKeywords are generic beauty words that suggest the user wants
// the menu, not a booking.
var serviceInquiryKeywords = []string{"髪", "美容", "スタイル"}

// Decision is the router's verdict for one message. Reply is pre-rendered for
// the inquiry and cancel intents; Service is set only for IntentServiceStart.
type Decision struct {
	Intent  domain.Intent
	Service domain.ServiceCatalogEntry
	Reply   string
}

// Classify assigns an intent to a message from a user with no open dialogue.
// IntentGeneral means the router declines and the FAQ pipeline takes over.
func Classify(message string) Decision {
	if containsAny(message, reservationKeywords) {
		return Decision{Intent: domain.IntentReservation}
	}

	if svc, found := reservation.MatchService(message); found {
		return Decision{Intent: domain.IntentServiceStart, Service: svc}
	}

	if containsAny(message, serviceInquiryKeywords) {
		return Decision{Intent: domain.IntentServiceInquiry, Reply: serviceInquiryReply()}
	}

	for _, member := range reservation.Staff() {
		if strings.Contains(message, member.Name) {
			return Decision{Intent: domain.IntentStaffInquiry, Reply: staffInquiryReply()}
		}
	}

	if containsAny(message, reservation.CancelKeywords) {
		return Decision{Intent: domain.IntentCancel, Reply: MsgCancelContact}
	}

	return Decision{Intent: domain.IntentGeneral}
}

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}
