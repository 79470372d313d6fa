package personality

import "github.com/kardolus/aipersonality/types"

const (
	ConfigFileName = "config.yaml"
	LogoFileName   = "logo.png"
	AssetsDirName  = "assets"
)

const (
	defaultVersion                 = "0.0.1"
	defaultName                    = "gpt4all"
	defaultUserName                = "user"
	defaultLanguage                = "en_XX"
	defaultCategory                = "General"
	defaultPersonalityDescription  = "This personality is a helpful and Kind AI ready to help you solve your problems"
	defaultPersonalityConditioning = "GPT4All is a smart and helpful Assistant built by Nomic-AI. It can discuss with humans and assist them.\nDate: {{date}}"
	defaultWelcomeMessage          = "Welcome! I am GPT4All A free and open assistant. What can I do for you today?"
	defaultUserMessagePrefix       = "### Human:"
	defaultLinkText                = "\n"
	defaultAIMessagePrefix         = "### Assistant:"
	defaultDisclaimer              = ""
	defaultModelTemperature        = 0.8
	defaultModelNPredicts          = 1024
	defaultModelTopK               = 50
	defaultModelTopP               = 0.95
	defaultModelRepeatPenalty      = 1.3
	defaultModelRepeatLastN        = 40
)

var (
	defaultAntiPrompts  = []string{"#", "###", "Human:", "Assistant:"}
	defaultDependencies = []string{}
)

// Defaults returns a Personality holding only built-in values. The slices are
// fresh copies, so callers may modify them freely.
func Defaults() types.Personality {
	return types.Personality{
		Version:                 defaultVersion,
		Name:                    defaultName,
		UserName:                defaultUserName,
		Language:                defaultLanguage,
		Category:                defaultCategory,
		PersonalityDescription:  defaultPersonalityDescription,
		PersonalityConditioning: defaultPersonalityConditioning,
		WelcomeMessage:          defaultWelcomeMessage,
		UserMessagePrefix:       defaultUserMessagePrefix,
		LinkText:                defaultLinkText,
		AIMessagePrefix:         defaultAIMessagePrefix,
		AntiPrompts:             append([]string{}, defaultAntiPrompts...),
		Dependencies:            append([]string{}, defaultDependencies...),
		Disclaimer:              defaultDisclaimer,
		ModelTemperature:        defaultModelTemperature,
		ModelNPredicts:          defaultModelNPredicts,
		ModelTopK:               defaultModelTopK,
		ModelTopP:               defaultModelTopP,
		ModelRepeatPenalty:      defaultModelRepeatPenalty,
		ModelRepeatLastN:        defaultModelRepeatLastN,
	}
}
