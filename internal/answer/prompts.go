package answer

import (
	"sort"
	"strings"
)

// answerSystemPrompt is the fixed persona and hard constraints for the
// generative backend. The extracted facts are appended as a bulleted list;
// they are the only information the model may use.
const answerSystemPrompt = `あなたは美容室「サロンAI」の親切なスタッフです。
お客様の質問に、丁寧で親しみやすい口調で回答してください。

必ず守るルール：
- 回答には下記の「サロン情報」に含まれる事実のみを使うこと
- サロン情報にない内容は推測せず「分かりません」と答えること
- 医療・医薬品に関する質問にはスタッフへの相談を案内すること
- 数字（料金・時間・電話番号など）を創作しないこと`

// buildAnswerSystemPrompt renders the persona plus the extracted facts.
// Facts are sorted by key so the prompt is deterministic.
func buildAnswerSystemPrompt(facts map[string]string) string {
	var b strings.Builder
	b.WriteString(answerSystemPrompt)
	b.WriteString("\n\nサロン情報：\n")

	keys := make([]string, 0, len(facts))
	for k := range facts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString("- ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(facts[k])
		b.WriteString("\n")
	}

	return b.String()
}
