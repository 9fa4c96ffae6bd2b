package narrator

import (
	"fmt"
	"strings"
)

// OpeningAction is the synthetic player action used to seed a brand new
// adventure before any story log exists.
const OpeningAction = "Start a new fantasy adventure for me in a mysterious, ancient forest."

// BuildPrompt renders the single free-text instruction sent to the backend.
// The full story log is replayed verbatim so the backend keeps narrative
// continuity; the trailing contract section forces a JSON-only reply parseable
// by ParseTurn.
func BuildPrompt(storyLog []string, action string) string {
	story := "(the story has not started yet)"
	if len(storyLog) > 0 {
		story = strings.Join(storyLog, "\n")
	}

	var b strings.Builder
	b.WriteString("You are an expert Dungeon Master for a text-based adventure game.\n")
	b.WriteString("Your role is to create a compelling, engaging, and coherent narrative.\n\n")
	b.WriteString("Here is the story so far:\n")
	b.WriteString(story)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The player's latest action is: %q\n\n", action)
	b.WriteString("Based on this, you must:\n")
	b.WriteString("1. Generate the next part of the story as a single, descriptive paragraph.\n")
	b.WriteString("2. Provide a list of 3 distinct, actionable choices for the player to make next.\n")
	b.WriteString("3. Provide a short, descriptive prompt (5-10 words) for an image generator.\n")
	b.WriteString("4. Update the player's inventory if they acquired or lost an item.\n")
	b.WriteString("5. Return the response ONLY in a valid JSON format with the following keys:\n")
	b.WriteString(`    "narrative": "The next part of the story.",` + "\n")
	b.WriteString(`    "choices": ["Choice 1", "Choice 2", "Choice 3"],` + "\n")
	b.WriteString(`    "image_prompt": "A prompt for an image generator.",` + "\n")
	b.WriteString(`    "new_inventory": ["item1", "item2"]` + "\n")
	return b.String()
}
