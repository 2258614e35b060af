// Command loading-demo shows the deferred-loading flow end to end: declare
// a bundle, drain the registry one asset per frame behind a progress bar,
// then serve the loaded assets from the typed getters.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/loadstone/asset"
	"github.com/lixenwraith/loadstone/audio"
	"github.com/lixenwraith/loadstone/font"
	"github.com/lixenwraith/loadstone/manifest"
	"github.com/lixenwraith/loadstone/sprite"
)

var (
	manifestFlag = flag.String("manifest", "assets/bundle.yaml", "bundle manifest to load")
	muteFlag     = flag.Bool("mute", false, "disable audio playback")
	spriteFlag   = flag.String("sprite", "", "image asset to draw once loaded (default: first image in the bundle)")
	themeFlag    = flag.String("theme", "", "audio asset to play once loaded (default: first audio in the bundle)")
)

func main() {
	flag.Parse()

	bundle, err := manifest.Load(*manifestFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading-demo: %v\n", err)
		os.Exit(1)
	}

	manifest.RegisterLoaders()

	images := sprite.NewManager()
	clips := audio.NewManager()
	faces := font.NewManager()
	reg := asset.NewRegistry(bundle.Name,
		// The screen owns the terminal; keep diagnostics off it.
		asset.WithLogger(log.New(io.Discard, "", 0)),
		asset.WithStore(asset.KindImage, images),
		asset.WithStore(asset.KindAudio, clips),
		asset.WithStore(asset.KindFont, faces),
	)
	if err := bundle.Apply(reg); err != nil {
		fmt.Fprintf(os.Stderr, "loading-demo: %v\n", err)
		os.Exit(1)
	}
	defer reg.CleanUp()

	sound := audio.NewService()
	if err := sound.Init(*muteFlag); err != nil {
		fmt.Fprintf(os.Stderr, "loading-demo: %v\n", err)
		os.Exit(1)
	}
	if err := sound.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "loading-demo: %v\n", err)
		os.Exit(1)
	}
	defer sound.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading-demo: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "loading-demo: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, reg, bundle, sound)
}

func run(screen tcell.Screen, reg *asset.Registry, bundle *manifest.Bundle, sound *audio.Service) {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	total := reg.QueueLen()
	var loadErrs []error
	played := false

	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if !reg.FullyLoaded() {
				// One asset per frame keeps the bar honest and the loop
				// responsive to quit keys between decodes.
				if _, err := reg.LoadNext(); err != nil {
					loadErrs = append(loadErrs, err)
				}
			} else if !played {
				played = true
				playTheme(reg, bundle, sound)
			}
			draw(screen, reg, bundle, total, loadErrs)
		}
	}
}

func draw(screen tcell.Screen, reg *asset.Registry, bundle *manifest.Bundle, total int, loadErrs []error) {
	screen.Clear()
	width, height := screen.Size()

	loaded := total - reg.QueueLen()
	title := fmt.Sprintf("Loading %q  %d/%d", bundle.Name, loaded, total)
	drawText(screen, 2, 1, tcell.StyleDefault.Bold(true), title)
	drawBar(screen, 2, 3, width-4, loaded, total)

	row := 5
	for _, err := range loadErrs {
		drawText(screen, 2, row, tcell.StyleDefault.Foreground(tcell.ColorRed), err.Error())
		row++
	}

	if reg.FullyLoaded() {
		drawText(screen, 2, row+1, tcell.StyleDefault.Foreground(tcell.ColorGreen), "Done. Press q to quit.")
		if sheet := pickSheet(reg, bundle); sheet != nil {
			drawSheet(screen, 2, row+3, width-4, height-row-4, sheet)
		}
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawBar(screen tcell.Screen, x, y, width, loaded, total int) {
	if width <= 0 {
		return
	}
	filled := width
	if total > 0 {
		filled = width * loaded / total
	}
	for i := 0; i < width; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault.Foreground(tcell.ColorAqua))
	}
}

// drawSheet paints the sheet as background-colored cells, one pixel per
// cell, clipped to the given box.
func drawSheet(screen tcell.Screen, x, y, maxW, maxH int, sheet *sprite.Sheet) {
	bounds := sheet.Img.Bounds()
	w := min(bounds.Dx(), maxW)
	h := min(bounds.Dy(), maxH)
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			c := color.NRGBAModel.Convert(sheet.Img.At(bounds.Min.X+px, bounds.Min.Y+py)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			screen.SetContent(x+px, y+py, ' ', nil, style)
		}
	}
}

// pickSheet resolves the sprite to showcase: the -sprite flag or the first
// image declaration in the bundle.
func pickSheet(reg *asset.Registry, bundle *manifest.Bundle) *sprite.Sheet {
	name := *spriteFlag
	if name == "" {
		name = firstOfKind(bundle, asset.KindImage)
	}
	if name == "" {
		return nil
	}
	sheet, err := reg.Image(name)
	if err != nil {
		return nil
	}
	return sheet
}

// playTheme plays the showcase clip once everything is cached.
func playTheme(reg *asset.Registry, bundle *manifest.Bundle, sound *audio.Service) {
	engine := sound.Engine()
	if engine == nil {
		return
	}
	name := *themeFlag
	if name == "" {
		name = firstOfKind(bundle, asset.KindAudio)
	}
	if name == "" {
		return
	}
	if clip, err := reg.Audio(name); err == nil {
		_ = engine.Play(clip)
	}
}

// firstOfKind returns the first bundle declaration of the given kind.
func firstOfKind(bundle *manifest.Bundle, kind asset.Kind) string {
	for _, d := range bundle.Assets {
		if k, err := asset.ParseKind(d.Kind); err == nil && k == kind {
			return d.Name
		}
	}
	return ""
}
