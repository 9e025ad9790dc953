package answer

// Fixed user-facing messages. All failure modes surface as one of these;
// raw errors never reach the user.
const (
	// MsgRefusalNoMatch is returned when no KB-grounded answer exists.
	MsgRefusalNoMatch = "申し訳ございませんが、その質問については分かりません。スタッフにお繋ぎしますので、お電話でお問い合わせください。"

	// MsgRefusalSensitive is returned for medical or pharmaceutical topics.
	MsgRefusalSensitive = "申し訳ございませんが、医療やお薬に関するご質問にはお答えできかねます。スタッフまで直接ご相談ください。"

	// MsgUnavailable is returned when the generative backend fails.
	MsgUnavailable = "申し訳ございませんが、現在システムの調子が悪いようです。しばらくしてから再度お試しください。"
)
