package ditherpunk

import (
	"context"
	"image"
	"image/gif"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// DefaultGIFDelay is how long a frame with no delay of its own is shown.
const DefaultGIFDelay = 100 * time.Millisecond

// GIFFrame is one fully composited frame of an animated GIF.
type GIFFrame struct {
	Image *image.NRGBA
	Delay time.Duration
}

/*
CompositeGIF flattens the frames of g onto an opaque canvas filled with bg, so
every GIFFrame is what a viewer would show at that point of the animation.
Transparent pixels let earlier frames show through. Disposal methods are
respected: DisposalBackground clears the frame's area back to bg and
DisposalPrevious undoes the frame once it has been shown.
*/
func CompositeGIF(g *gif.GIF, bg RGB) []GIFFrame {
	if g == nil || len(g.Image) == 0 {
		return nil
	}
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		for _, frame := range g.Image {
			bounds = bounds.Union(frame.Bounds())
		}
	}
	background := image.NewUniform(nrgba(bg))
	canvas := image.NewNRGBA(bounds)
	draw.Draw(canvas, bounds, background, image.Point{}, draw.Src)

	frames := make([]GIFFrame, 0, len(g.Image))
	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, GIFFrame{Image: cloneNRGBA(canvas), Delay: gifDelay(g, i)})

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), background, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return frames
}

func gifDelay(g *gif.GIF, i int) time.Duration {
	if i >= len(g.Delay) || g.Delay[i] <= 0 {
		return DefaultGIFDelay
	}
	return time.Duration(g.Delay[i]) * 10 * time.Millisecond
}

func cloneNRGBA(img *image.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}

/*
Play draws frames in place, each held for its own delay, the way Animate draws
a stream. loopCount follows gif.GIF: 0 repeats forever, -1 plays once and n > 0
plays n+1 times. It returns nil when the loops are done or ctx is cancelled.
*/
func (a *Animator) Play(ctx context.Context, frames []GIFFrame, loopCount int) error {
	if len(frames) == 0 {
		return nil
	}
	a.t.ShowCursor(false)
	defer a.t.ShowCursor(true)

	plays := 1
	if loopCount > 0 {
		plays = loopCount + 1
	}
	for pass := 0; loopCount == 0 || pass < plays; pass++ {
		Logger().Debug("playing gif", zap.Int("pass", pass), zap.Int("frames", len(frames)))
		for _, frame := range frames {
			more, err := a.show(ctx, frame.Image, frame.Delay)
			if err != nil || !more {
				return err
			}
		}
	}
	return nil
}
