package personality

import (
	"github.com/kardolus/aipersonality/types"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	nullTag = "!!null"
	intTag  = "!!int"
)

type document map[string]*yaml.Node

// field returns the value stored under key, or def when the key is absent,
// null, or holds a value that does not decode into T.
func field[T any](logger *zap.Logger, doc document, key string, def T) T {
	node, ok := doc[key]
	if !ok || node == nil || node.ShortTag() == nullTag {
		return def
	}

	if _, isInt := any(def).(int); isInt && node.ShortTag() != intTag {
		logger.Debug("ignoring non-integer personality field",
			zap.String("key", key),
			zap.Int("line", node.Line),
			zap.String("tag", node.ShortTag()),
		)
		return def
	}

	var value T
	if err := node.Decode(&value); err != nil {
		logger.Debug("ignoring malformed personality field",
			zap.String("key", key),
			zap.Int("line", node.Line),
			zap.Error(err),
		)
		return def
	}

	return value
}

// apply overlays every schema key found in doc onto the defaults.
func apply(logger *zap.Logger, doc document) types.Personality {
	p := Defaults()

	p.Version = field(logger, doc, "version", p.Version)
	p.Name = field(logger, doc, "name", p.Name)
	p.UserName = field(logger, doc, "user_name", p.UserName)
	p.Language = field(logger, doc, "language", p.Language)
	p.Category = field(logger, doc, "category", p.Category)
	p.PersonalityDescription = field(logger, doc, "personality_description", p.PersonalityDescription)
	p.PersonalityConditioning = field(logger, doc, "personality_conditioning", p.PersonalityConditioning)
	p.WelcomeMessage = field(logger, doc, "welcome_message", p.WelcomeMessage)
	p.UserMessagePrefix = field(logger, doc, "user_message_prefix", p.UserMessagePrefix)
	p.LinkText = field(logger, doc, "link_text", p.LinkText)
	p.AIMessagePrefix = field(logger, doc, "ai_message_prefix", p.AIMessagePrefix)
	p.AntiPrompts = field(logger, doc, "anti_prompts", p.AntiPrompts)
	p.Dependencies = field(logger, doc, "dependencies", p.Dependencies)
	p.Disclaimer = field(logger, doc, "disclaimer", p.Disclaimer)
	p.ModelTemperature = field(logger, doc, "model_temperature", p.ModelTemperature)
	p.ModelNPredicts = field(logger, doc, "model_n_predicts", p.ModelNPredicts)
	p.ModelTopK = field(logger, doc, "model_top_k", p.ModelTopK)
	p.ModelTopP = field(logger, doc, "model_top_p", p.ModelTopP)
	p.ModelRepeatPenalty = field(logger, doc, "model_repeat_penalty", p.ModelRepeatPenalty)
	p.ModelRepeatLastN = field(logger, doc, "model_repeat_last_n", p.ModelRepeatLastN)

	return p
}
