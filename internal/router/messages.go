package router

import (
	"fmt"
	"strings"

	"github.com/hikarisalon/concierge/internal/reservation"
)

// MsgCancelContact is returned for a cancellation request when no dialogue is
// open. Existing bookings can only be cancelled through the front desk.
const MsgCancelContact = "ご予約のキャンセルは、お手数ですがお電話にて承っております。サロンまで直接ご連絡ください。"

// serviceInquiryReply lists the menu and invites a booking.
func serviceInquiryReply() string {
	var b strings.Builder
	b.WriteString("当店のメニューをご案内いたします。\n\n")
	for _, svc := range reservation.Services() {
		fmt.Fprintf(&b, "・%s（%d分 / %d円）\n", svc.Name, svc.DurationMinutes, svc.Price)
	}
	b.WriteString("\nご予約をご希望の場合は「予約」とお送りください。")
	return b.String()
}

// staffInquiryReply introduces the roster and invites a booking.
func staffInquiryReply() string {
	var b strings.Builder
	b.WriteString("当店のスタッフをご紹介いたします。\n\n")
	for _, member := range reservation.Staff() {
		fmt.Fprintf(&b, "・%s（%s・%s）\n", member.Name, member.Specialty, member.ExperienceLabel)
	}
	b.WriteString("\nご指名のご予約は「予約」とお送りください。")
	return b.String()
}
