package personality_test

import (
	"errors"
	"github.com/kardolus/aipersonality/internal/fsio"
	"github.com/kardolus/aipersonality/personality"
	"github.com/kardolus/aipersonality/types"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"os"
	"path/filepath"
	"testing"
)

func TestUnitSaver(t *testing.T) {
	spec.Run(t, "Testing the personality saver", testSaver, spec.Report(report.Terminal{}))
}

func testSaver(t *testing.T, when spec.G, it spec.S) {
	var (
		dir    string
		saver  *personality.Saver
		loader *personality.Loader
	)

	custom := func() types.Personality {
		p := personality.Defaults()
		p.Version = "1.0.0"
		p.Name = "MyPersonality"
		p.UserName = "my_username"
		p.Language = "en_US"
		p.Category = "Personalized"
		p.PersonalityConditioning = "Line one.\nToday is {{date}}."
		p.UserMessagePrefix = "User:"
		p.AIMessagePrefix = "MyPersonality:"
		p.AntiPrompts = []string{"#", "User:", "MyPersonality:"}
		p.Dependencies = []string{"dependency1", "dependency2"}
		p.Disclaimer = "This AI is not responsible."
		p.ModelTemperature = 0.7
		p.ModelNPredicts = 512
		p.ModelTopK = 30
		p.ModelTopP = 0.9
		p.ModelRepeatPenalty = 1.2
		p.ModelRepeatLastN = 30
		return p
	}

	it.Before(func() {
		RegisterTestingT(t)
		dir = filepath.Join(t.TempDir(), "my_personality")
		saver = personality.NewSaver(fsio.NewOS())
		loader = personality.New(
			personality.WithLogoMode(personality.LogoModePackageDir),
			personality.WithLogger(zap.NewNop()),
		)
	})

	when("Save()", func() {
		it("round-trips the defaults", func() {
			Expect(saver.Save(dir, personality.Defaults())).To(Succeed())

			result, err := loader.LoadPackage(dir)

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(personality.Defaults()))
		})

		it("round-trips every field and the logo", func() {
			p := custom()
			p.Logo = &types.Logo{Width: 2, Height: 1, Channels: 3, Pix: []byte{10, 20, 30, 40, 50, 60}}

			Expect(saver.Save(dir, p)).To(Succeed())

			result, err := loader.LoadPackage(dir)

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(p))
		})

		it("is idempotent under repeated save and load", func() {
			Expect(saver.Save(dir, custom())).To(Succeed())
			first, err := loader.LoadPackage(dir)
			Expect(err).NotTo(HaveOccurred())

			Expect(saver.Save(dir, first)).To(Succeed())
			second, err := loader.LoadPackage(dir)
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
		})

		it("creates the assets folder without a logo file when there is no logo", func() {
			Expect(saver.Save(dir, custom())).To(Succeed())

			st, err := os.Stat(filepath.Join(dir, personality.AssetsDirName))
			Expect(err).NotTo(HaveOccurred())
			Expect(st.IsDir()).To(BeTrue())

			_, err = os.Stat(filepath.Join(dir, personality.AssetsDirName, personality.LogoFileName))
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})

		it("leaves no temporary files behind", func() {
			Expect(saver.Save(dir, custom())).To(Succeed())

			entries, err := os.ReadDir(dir)
			Expect(err).NotTo(HaveOccurred())

			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			Expect(names).To(ConsistOf(personality.ConfigFileName, personality.AssetsDirName))
		})

		it("rejects a logo whose buffer does not match its dimensions", func() {
			p := custom()
			p.Logo = &types.Logo{Width: 3, Height: 3, Channels: 3, Pix: []byte{1}}

			Expect(saver.Save(dir, p)).NotTo(Succeed())

			_, err := os.Stat(dir)
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})

		it("keeps the previous config when the new logo cannot be encoded", func() {
			Expect(saver.Save(dir, personality.Defaults())).To(Succeed())

			p := custom()
			p.Logo = &types.Logo{Width: 2, Height: 2, Channels: 5, Pix: make([]byte, 20)}

			Expect(saver.Save(dir, p)).NotTo(Succeed())

			result, err := loader.LoadPackage(dir)

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(personality.Defaults()))
			_, err = os.Stat(filepath.Join(dir, personality.AssetsDirName, personality.LogoFileName))
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})

		it("fails when the target cannot be created", func() {
			saver = personality.NewSaver(fsio.New(afero.NewReadOnlyFs(afero.NewMemMapFs())))

			Expect(saver.Save("/zoo/bob", custom())).NotTo(Succeed())
		})
	})
}
