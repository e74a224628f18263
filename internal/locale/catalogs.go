package locale

import (
	"fmt"
	"strconv"

	"github.com/verte-zerg/tuitap/internal/tap"
)

var maxTouchSeconds = strconv.FormatFloat(tap.MaxTouchTime.Seconds(), 'f', -1, 64)

var english = Messages{
	Code: "en",

	AppTitle:    "Tap practice",
	IntroFmt:    "Let's practice tapping %d times every day.",
	IntroHow:    "Touch the button on the screen lightly and quickly with one finger.",
	StartFmt:    "Start practice (%d taps)",
	PracticeFmt: "Tap practice (%d / %d)",
	Instruction: "Tap the big button lightly and quickly with one finger.",
	Target:      "Tap here!",
	Reset:       "Back to start / quit",
	Wait:        "Please wait...",

	Success:           "Tap succeeded!",
	OffTarget:         "You tapped outside the button. Please tap the button.",
	MultiFinger:       "That is not a tap. Please use one finger.",
	ExcessiveMovement: "That is not a tap. Touch lightly without moving your finger up, down, left or right.",
	ExcessiveDuration: fmt.Sprintf("That is not a tap. Keep your finger down for less than %s seconds and touch lightly.", maxTouchSeconds),

	OffTargetLabel:   "outside the button",
	MultiFingerLabel: "more than one finger",
	MovementLabel:    "finger moved",
	DurationLabel:    "held too long",

	ResultTitle:  "Today's practice is done",
	ResultFmt:    "You finished all %d taps. Well done!",
	StatsTitle:   "Results",
	SuccessLabel: "Succeeded:",
	FailLabel:    "Failed:",
	TimesFmt:     "%d",
	BreakdownFmt: "  %s",
	Restart:      "Practice again",
	Note:         "You can stop here. Let's try again tomorrow!",

	HelpStart: "start",
	HelpBack:  "back to start",
	HelpQuit:  "quit",
}

var japanese = Messages{
	Code: "ja",

	AppTitle:    "おばあちゃんのタップ練習",
	IntroFmt:    "毎日%d回のタップ練習をしましょう。",
	IntroHow:    "画面に表示されるボタンを指1本で軽く、素早くタッチしてください。",
	StartFmt:    "練習を始める(全 %d 回)",
	PracticeFmt: "タップ練習 (%d / %d 回目)",
	Instruction: "画面の大きなボタンを、指1本で軽く、素早くタップしてください。",
	Target:      "ここをタップ！",
	Reset:       "最初に戻る/終了",
	Wait:        "少しお待ちください...",

	Success:           "タップ成功！",
	OffTarget:         "ボタン以外の画面をタップしてしまいました。ボタンをタップしてください。",
	MultiFinger:       "それはタップではありません。1本指で操作してください。",
	ExcessiveMovement: "それはタップではありません。指が上下左右にぶれないように軽く触れてください。",
	ExcessiveDuration: fmt.Sprintf("それはタップではありません。指で押さえる時間は%s秒より短く軽く触るようにしてください。", maxTouchSeconds),

	OffTargetLabel:   "ボタンの外",
	MultiFingerLabel: "指の数",
	MovementLabel:    "ぶれ",
	DurationLabel:    "長すぎ",

	ResultTitle:  "🎉本日の練習終了🎉",
	ResultFmt:    "全 %d 回の練習が終わりました。よく頑張りました！",
	StatsTitle:   "練習結果",
	SuccessLabel: "✅タップ成功:",
	FailLabel:    "❌タップ失敗:",
	TimesFmt:     "%d 回",
	BreakdownFmt: "  %s",
	Restart:      "もう一度練習する",
	Note:         "これで練習を終了できます。また明日チャレンジしましょう！",

	HelpStart: "開始",
	HelpBack:  "最初に戻る",
	HelpQuit:  "終了",
}
