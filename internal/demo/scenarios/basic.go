package scenarios

import (
	"time"

	"github.com/zhubert/chatter/internal/demo"
	"github.com/zhubert/chatter/internal/ui"
)

// Basic walks through a first session:
// - Sending a message as the default alias
// - Adding a second alias from the roster and switching to it
// - Replying under the new identity
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Send messages, add an alias, switch identity",
	Width:       100,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		DefaultAlias: "alice",
	},
	Steps: []demo.Step{
		// Empty log with the composer focused
		demo.Wait(1 * time.Second),
		demo.Capture(),

		demo.Annotate("Type a message, then shift+enter to send"),
		demo.TypeWithDesc("Morning! Is the deploy still on for today?", "compose"),
		demo.Capture(),
		demo.KeyWithDesc("shift+enter", "send"),
		demo.Wait(500 * time.Millisecond),

		// Open the roster and add bob
		demo.Annotate("ctrl+a manages aliases"),
		demo.KeyWithDesc("ctrl+a", "open roster"),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("a", "add alias"),
		demo.Type("bob"),
		demo.Capture(),
		demo.KeyWithDesc("enter", "confirm alias"),
		demo.Wait(500 * time.Millisecond),

		// Highlight bob and make him active
		demo.KeyWithDesc("j", "move to bob"),
		demo.KeyWithDesc("enter", "select bob"),
		demo.Wait(500 * time.Millisecond),
		demo.KeyWithDesc("esc", "close roster"),

		demo.Annotate("Messages are labelled with the active alias"),
		demo.Type("Yes, after lunch."),
		demo.Key("ctrl+s"),
		demo.Wait(1 * time.Second),

		// Code fences are highlighted
		demo.Type("```go"),
		demo.Key("enter"),
		demo.Type("fmt.Println(\"shipped\")"),
		demo.Key("enter"),
		demo.Type("```"),
		demo.Key("shift+enter"),
		demo.Wait(1 * time.Second),

		demo.Flash("Demo complete", ui.FlashSuccess),

		// Final pause
		demo.Wait(3 * time.Second),
	},
}
