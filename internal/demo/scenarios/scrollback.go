package scenarios

import (
	"fmt"
	"time"

	"github.com/zhubert/chatter/internal/demo"
)

// Scrollback shows the log staying put while the user reads history and
// following again once they return to the newest message.
var Scrollback = &demo.Scenario{
	Name:        "scrollback",
	Description: "Read history while new messages arrive",
	Width:       100,
	Height:      24,
	Setup: &demo.ScenarioSetup{
		DefaultAlias: "alice",
		Aliases:      []string{"bob"},
		Messages:     standupMessages(30),
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		demo.Annotate("Scroll up to read history"),
		demo.Wheel(-4),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("New messages don't move the view"),
		demo.Type("Catching up on the thread"),
		demo.Key("shift+enter"),
		demo.Wait(1 * time.Second),

		demo.Annotate("End jumps to the newest message and follows again"),
		demo.KeyWithDesc("end", "jump to newest"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		demo.Wait(3 * time.Second),
	},
}

// standupMessages alternates alice and bob for n messages.
func standupMessages(n int) []demo.SeedMessage {
	authors := []string{"alice", "bob"}
	msgs := make([]demo.SeedMessage, n)
	for i := range msgs {
		msgs[i] = demo.SeedMessage{
			Author: authors[i%len(authors)],
			Body:   fmt.Sprintf("standup note %d", i+1),
		}
	}
	return msgs
}
