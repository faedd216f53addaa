package dialog

import (
	"fmt"

	"github.com/claimmate/claimmate/internal/channel"
)

// Intent is a fixed category of recognized user request.
type Intent string

const (
	IntentMenu     Intent = "menu"
	IntentClaim    Intent = "claim"
	IntentUpload   Intent = "upload"
	IntentProgress Intent = "progress"
	IntentSupport  Intent = "support"
	IntentQA       Intent = "qa"
)

// catalogEntry binds an intent to its accepted aliases (already normalized)
// and its canned reply.
type catalogEntry struct {
	intent  Intent
	aliases []string
	reply   string
}

// catalog lists intents in resolution priority order. Resolution is exact
// set membership after Normalize; if a literal ever appeared in two alias
// sets, the earlier entry would win. Validate rejects that case outright so
// the tie-break never has to fire.
var catalog = []catalogEntry{
	{
		intent:  IntentMenu,
		aliases: []string{"menu", "菜單", "選單", "help"},
		reply:   menuText,
	},
	{
		intent:  IntentClaim,
		aliases: []string{"理賠", "理賠流程", "claim"},
		reply: "理賠流程如下：\n" +
			"1. 上傳保單檔案，取得 upload_id\n" +
			"2. 以 upload_id 建立理賠申請\n" +
			"3. 資料檢核 → 理賠初審 → 複核/補件 → 核賠 → 撥款\n" +
			"建立後可隨時輸入「進度」查詢處理狀態。",
	},
	{
		intent:  IntentUpload,
		aliases: []string{"上傳", "上傳規格", "upload"},
		reply: "保單上傳規格：\n" +
			"・POST /uploads/policy（multipart 欄位名 policy）\n" +
			"・任何副檔名皆可，Demo 不做格式驗證\n" +
			"・上傳成功會回傳 upload_id，請妥善保存\n" +
			"・後續理賠申請需要這組 upload_id。",
	},
	{
		intent:  IntentProgress,
		aliases: []string{"進度", "查進度", "查件", "進度查詢"},
		reply: "理賠進度查詢：\n" +
			"・準備好您的理賠單號（clm_ 開頭）\n" +
			"・GET /progress/{claim_id} 可查詢目前狀態與後續步驟\n" +
			"・狀態依序為：收件 → 檢核 → 審查 → 補件 → 核賠 → 撥款。",
	},
	{
		intent:  IntentSupport,
		aliases: []string{"客服", "客服資訊", "support"},
		reply: "客服資訊：\n" +
			"服務時間：週一至週五 09:00-18:00\n" +
			"電話：0800-123-456\n" +
			"Email：service@claimmate.example.com",
	},
	{
		intent:  IntentQA,
		aliases: []string{"qa", "常見問題", "faq"},
		reply: "常見問題：\n" +
			"Q：上傳後多久會收件？\nA：上傳並建立申請後立即收件（狀態 RECEIVED）。\n" +
			"Q：需要補件怎麼辦？\nA：狀態為 NEED_MORE_INFO 時，客服會主動聯繫您。\n" +
			"Q：理賠多久撥款？\nA：核賠完成後 3-5 個工作天內撥款。",
	},
}

const menuText = "📋 AI 理賠小幫手服務選單\n" +
	"1️⃣ 輸入「理賠」看理賠流程\n" +
	"2️⃣ 輸入「上傳」看保單上傳規格\n" +
	"3️⃣ 輸入「進度」查詢理賠進度\n" +
	"4️⃣ 輸入「客服」取得客服資訊\n" +
	"5️⃣ 輸入「QA」看常見問題"

const fallbackText = "嗨，我是 AI 理賠小幫手 🤖\n" +
	"目前支援：理賠流程／上傳規格／進度查詢／客服資訊／常見問題\n" +
	"輸入「菜單」可以開啟服務選單。"

const busyText = "系統忙碌中，請稍後再試 🙏"

// menuActions is the fixed ordered quick-reply menu attached to every
// outgoing message. Each keyword must resolve to a known intent; Validate
// enforces that at startup.
var menuActions = []channel.Action{
	{Label: "理賠流程", Text: "理賠"},
	{Label: "上傳規格", Text: "上傳"},
	{Label: "進度查詢", Text: "進度"},
	{Label: "客服資訊", Text: "客服"},
	{Label: "常見問題", Text: "QA"},
}

// Resolve maps normalized text to an intent by exact alias membership,
// first catalog entry wins. The second return value is false when no alias
// matches.
func Resolve(normalized string) (Intent, bool) {
	if normalized == "" {
		return "", false
	}
	for _, entry := range catalog {
		for _, alias := range entry.aliases {
			if alias == normalized {
				return entry.intent, true
			}
		}
	}
	return "", false
}

// ReplyFor returns the canned reply for an intent, or the fallback text for
// an intent outside the catalog.
func ReplyFor(intent Intent) string {
	for _, entry := range catalog {
		if entry.intent == intent {
			return entry.reply
		}
	}
	return fallbackText
}

// BuildMenu produces a message carrying the quick-reply menu. The body is
// the override text when given, otherwise the default menu text.
func BuildMenu(override string) channel.Message {
	text := override
	if text == "" {
		text = menuText
	}
	actions := make([]channel.Action, len(menuActions))
	copy(actions, menuActions)
	return channel.Message{Text: text, Actions: actions}
}

// Validate checks the catalog invariants: every intent has exactly one entry
// with at least one normalized alias, no alias literal appears in two sets,
// every entry has a reply, and every quick-reply keyword resolves.
func Validate() error {
	known := []Intent{IntentMenu, IntentClaim, IntentUpload, IntentProgress, IntentSupport, IntentQA}
	entries := make(map[Intent]int, len(catalog))
	seenAliases := make(map[string]Intent)
	for _, entry := range catalog {
		entries[entry.intent]++
		if len(entry.aliases) == 0 {
			return fmt.Errorf("intent %s has no aliases", entry.intent)
		}
		if entry.reply == "" {
			return fmt.Errorf("intent %s has no reply", entry.intent)
		}
		for _, alias := range entry.aliases {
			if alias != Normalize(alias) {
				return fmt.Errorf("intent %s alias %q is not normalized", entry.intent, alias)
			}
			if owner, ok := seenAliases[alias]; ok {
				return fmt.Errorf("alias %q declared for both %s and %s", alias, owner, entry.intent)
			}
			seenAliases[alias] = entry.intent
		}
	}
	for _, intent := range known {
		if count := entries[intent]; count != 1 {
			return fmt.Errorf("intent %s has %d catalog entries, want 1", intent, count)
		}
	}
	if len(entries) != len(known) {
		return fmt.Errorf("catalog has %d entries, want %d", len(entries), len(known))
	}
	for _, action := range menuActions {
		if _, ok := Resolve(Normalize(action.Text)); !ok {
			return fmt.Errorf("menu keyword %q does not resolve to an intent", action.Text)
		}
	}
	return nil
}
