package personality

import (
	"fmt"
	"github.com/kardolus/aipersonality/types"
	"strings"
)

const noLogo = "This personality has no logo"

// Describe renders p as an indented "key: value" listing.
func Describe(p types.Personality) string {
	attributes := []string{
		fmt.Sprintf("version: %s", p.Version),
		fmt.Sprintf("name: %s", p.Name),
		fmt.Sprintf("user_name: %s", p.UserName),
		fmt.Sprintf("language: %s", p.Language),
		fmt.Sprintf("category: %s", p.Category),
		fmt.Sprintf("personality_description: %s", p.PersonalityDescription),
		fmt.Sprintf("personality_conditioning: %q", p.PersonalityConditioning),
		fmt.Sprintf("welcome_message: %s", p.WelcomeMessage),
		fmt.Sprintf("user_message_prefix: %s", p.UserMessagePrefix),
		fmt.Sprintf("link_text: %q", p.LinkText),
		fmt.Sprintf("ai_message_prefix: %s", p.AIMessagePrefix),
		fmt.Sprintf("anti_prompts: %q", p.AntiPrompts),
		fmt.Sprintf("dependencies: %q", p.Dependencies),
		fmt.Sprintf("disclaimer: %s", p.Disclaimer),
		fmt.Sprintf("model_temperature: %g", p.ModelTemperature),
		fmt.Sprintf("model_n_predicts: %d", p.ModelNPredicts),
		fmt.Sprintf("model_top_k: %d", p.ModelTopK),
		fmt.Sprintf("model_top_p: %g", p.ModelTopP),
		fmt.Sprintf("model_repeat_penalty: %g", p.ModelRepeatPenalty),
		fmt.Sprintf("model_repeat_last_n: %d", p.ModelRepeatLastN),
	}

	if p.Logo != nil {
		attributes = append(attributes, fmt.Sprintf("logo: %dx%d (%d channels)", p.Logo.Width, p.Logo.Height, p.Logo.Channels))
	} else {
		attributes = append(attributes, "logo: "+noLogo)
	}

	return "AIPersonality:\n  " + strings.Join(attributes, ",\n  ")
}
