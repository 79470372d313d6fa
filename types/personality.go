package types

import (
	"fmt"
	"image"
	"image/color"
)

type Personality struct {
	Version                 string   `yaml:"version" json:"version" toml:"version"`
	Name                    string   `yaml:"name" json:"name" toml:"name"`
	UserName                string   `yaml:"user_name" json:"user_name" toml:"user_name"`
	Language                string   `yaml:"language" json:"language" toml:"language"`
	Category                string   `yaml:"category" json:"category" toml:"category"`
	PersonalityDescription  string   `yaml:"personality_description" json:"personality_description" toml:"personality_description"`
	PersonalityConditioning string   `yaml:"personality_conditioning" json:"personality_conditioning" toml:"personality_conditioning"`
	WelcomeMessage          string   `yaml:"welcome_message" json:"welcome_message" toml:"welcome_message"`
	UserMessagePrefix       string   `yaml:"user_message_prefix" json:"user_message_prefix" toml:"user_message_prefix"`
	LinkText                string   `yaml:"link_text" json:"link_text" toml:"link_text"`
	AIMessagePrefix         string   `yaml:"ai_message_prefix" json:"ai_message_prefix" toml:"ai_message_prefix"`
	AntiPrompts             []string `yaml:"anti_prompts" json:"anti_prompts" toml:"anti_prompts"`
	Dependencies            []string `yaml:"dependencies" json:"dependencies" toml:"dependencies"`
	Disclaimer              string   `yaml:"disclaimer" json:"disclaimer" toml:"disclaimer"`
	ModelTemperature        float64  `yaml:"model_temperature" json:"model_temperature" toml:"model_temperature"`
	ModelNPredicts          int      `yaml:"model_n_predicts" json:"model_n_predicts" toml:"model_n_predicts"`
	ModelTopK               int      `yaml:"model_top_k" json:"model_top_k" toml:"model_top_k"`
	ModelTopP               float64  `yaml:"model_top_p" json:"model_top_p" toml:"model_top_p"`
	ModelRepeatPenalty      float64  `yaml:"model_repeat_penalty" json:"model_repeat_penalty" toml:"model_repeat_penalty"`
	ModelRepeatLastN        int      `yaml:"model_repeat_last_n" json:"model_repeat_last_n" toml:"model_repeat_last_n"`

	// Logo is nil unless the logo asset decoded successfully.
	Logo *Logo `yaml:"-" json:"-" toml:"-"`
}

// Logo is a decoded bitmap with interleaved 8-bit channels, row-major, no padding.
type Logo struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// Image rebuilds an image.Image view of the logo buffer. Supported channel
// counts are 1 (gray), 2 (gray+alpha), 3 (RGB) and 4 (RGBA).
func (l *Logo) Image() (image.Image, error) {
	if l == nil {
		return nil, fmt.Errorf("logo is nil")
	}
	if want := l.Width * l.Height * l.Channels; len(l.Pix) != want {
		return nil, fmt.Errorf("logo buffer has %d bytes, expected %d", len(l.Pix), want)
	}

	rect := image.Rect(0, 0, l.Width, l.Height)

	switch l.Channels {
	case 1:
		img := image.NewGray(rect)
		copy(img.Pix, l.Pix)
		return img, nil
	case 4:
		img := image.NewNRGBA(rect)
		copy(img.Pix, l.Pix)
		return img, nil
	case 2, 3:
		img := image.NewNRGBA(rect)
		for i := 0; i < l.Width*l.Height; i++ {
			px := l.Pix[i*l.Channels : (i+1)*l.Channels]
			var c color.NRGBA
			if l.Channels == 2 {
				c = color.NRGBA{R: px[0], G: px[0], B: px[0], A: px[1]}
			} else {
				c = color.NRGBA{R: px[0], G: px[1], B: px[2], A: 0xff}
			}
			img.SetNRGBA(i%l.Width, i/l.Width, c)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported channel count %d", l.Channels)
	}
}
