package reservation

import (
	"fmt"
	"strings"

	"github.com/hikarisalon/concierge/internal/domain"
)

// cancelHint is appended to every dialogue prompt so the exit is always
// visible.
const cancelHint = "\n\n※「キャンセル」とお送りいただくと、いつでも予約を中止できます。"

const (
	// MsgCancelled closes a dialogue, whether by cancel keyword or by
	// declining the final confirmation.
	MsgCancelled = "予約をキャンセルいたしました。またのご利用をお待ちしております。"

	msgRetryService = "申し訳ございません、そのメニューはお取り扱いがございません。カット、カラー、パーマ、トリートメントの中からお選びください。" + cancelHint
	msgRetryStaff   = "申し訳ございません、そのお名前のスタッフはおりません。田中、佐藤、山田、または「未指定」でお願いいたします。" + cancelHint
	msgRetryDate    = "申し訳ございません、その日付は承れません。「明日」「明後日」「土曜日」のいずれかでお願いいたします。" + cancelHint
	msgRetryTime    = "お時間を読み取れませんでした。「14:00」「15時」のような形式でお願いいたします。" + cancelHint
)

// servicePrompt opens the dialogue with the full menu.
func servicePrompt() string {
	var b strings.Builder
	b.WriteString("ご予約ありがとうございます！ご希望のメニューをお選びください。\n\n")
	for _, svc := range Services() {
		fmt.Fprintf(&b, "・%s（%d分 / %s円）\n", svc.Name, svc.DurationMinutes, formatYen(svc.Price))
	}
	b.WriteString(cancelHint)
	return b.String()
}

// staffPrompt lists the roster plus the no-preference option.
func staffPrompt(service string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sですね、承知いたしました。ご希望のスタッフはいらっしゃいますか？\n\n", service)
	for _, member := range Staff() {
		fmt.Fprintf(&b, "・%s（%s・%s）\n", member.Name, member.Specialty, member.ExperienceLabel)
	}
	b.WriteString("・未指定（おまかせ）\n")
	b.WriteString(cancelHint)
	return b.String()
}

// datePrompt asks for the visit day.
func datePrompt(staff string) string {
	var who string
	if staff == domain.StaffUnspecified {
		who = "担当はおまかせで承ります。"
	} else {
		who = fmt.Sprintf("担当は%sが承ります。", staff)
	}
	return who + "ご希望の日にちをお聞かせください。「明日」「明後日」「土曜日」からお選びいただけます。" + cancelHint
}

// timesPrompt shows the open slots for the chosen date, capped at five.
func timesPrompt(date string, times []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%sですね。空いているお時間はこちらです。\n\n", date)
	shown := times
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, t := range shown {
		fmt.Fprintf(&b, "・%s\n", t)
	}
	b.WriteString("\nご希望のお時間をお送りください。")
	b.WriteString(cancelHint)
	return b.String()
}

// slotUnavailable re-prompts with the remaining open slots.
func slotUnavailable(parsed string, times []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "申し訳ございません、%sは空いておりません。\n\n", parsed)
	shown := times
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, t := range shown {
		fmt.Fprintf(&b, "・%s\n", t)
	}
	b.WriteString("\nこちらからお選びください。")
	b.WriteString(cancelHint)
	return b.String()
}

// confirmPrompt summarizes the pending reservation for the final yes/no.
func confirmPrompt(res domain.Reservation, svc domain.ServiceCatalogEntry) string {
	staff := res.Staff
	if staff == domain.StaffUnspecified {
		staff = "未指定（おまかせ）"
	}
	var b strings.Builder
	b.WriteString("ご予約内容の確認です。\n\n")
	fmt.Fprintf(&b, "メニュー：%s（%d分）\n", res.Service, svc.DurationMinutes)
	fmt.Fprintf(&b, "スタッフ：%s\n", staff)
	fmt.Fprintf(&b, "日にち：%s\n", res.Date)
	fmt.Fprintf(&b, "お時間：%s\n", res.Time)
	fmt.Fprintf(&b, "料金：%s円\n\n", formatYen(svc.Price))
	b.WriteString("こちらの内容でよろしければ「はい」とお送りください。")
	b.WriteString(cancelHint)
	return b.String()
}

// completionMessage confirms the booked reservation with the full summary.
func completionMessage(c domain.CompletedReservation) string {
	staff := c.Staff
	if staff == domain.StaffUnspecified {
		staff = "未指定（おまかせ）"
	}
	var b strings.Builder
	b.WriteString("ご予約を承りました！\n\n")
	fmt.Fprintf(&b, "メニュー：%s（%d分）\n", c.Service, c.DurationMinutes)
	fmt.Fprintf(&b, "スタッフ：%s\n", staff)
	fmt.Fprintf(&b, "日にち：%s\n", c.Date)
	fmt.Fprintf(&b, "お時間：%s\n", c.Time)
	fmt.Fprintf(&b, "料金：%s円\n\n", formatYen(c.Price))
	b.WriteString("ご来店を心よりお待ちしております。")
	return b.String()
}

// formatYen inserts thousands separators, e.g. 12000 -> "12,000".
func formatYen(v int) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
