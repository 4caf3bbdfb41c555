package ditherpunk

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Frame is one decoded image from a stream, or the error that ended it.
type Frame struct {
	Image image.Image
	Err   error
}

// FrameReader splits a stream of back-to-back JPEG images (MJPEG as served by
// most webcams and `ffmpeg -f mjpeg`) into frames.
type FrameReader struct {
	Reader io.Reader
}

/*
ReadAll decodes frames in a goroutine and hands them over on the returned
channel, which is closed at EOF, on the first error, or when ctx is done.

The channel holds one frame. A newly decoded frame replaces one the consumer
has not picked up yet, so a slow consumer always gets the most recent frame
rather than a backlog, and the last frame of a stream is never dropped.
*/
func (fr *FrameReader) ReadAll(ctx context.Context) <-chan Frame {
	frames := make(chan Frame, 1)
	go func() {
		defer close(frames)

		send := func(f Frame) {
			if ctx.Err() != nil {
				return
			}
			select {
			case frames <- f:
			case <-ctx.Done():
			}
		}

		r := bufio.NewReader(fr.Reader)
		var buf bytes.Buffer
		var dropped int
		for {
			if ctx.Err() != nil {
				return
			}
			c, err := r.ReadByte()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					send(Frame{Err: err})
				}
				return
			}
			buf.WriteByte(c)

			// 0xFFD9 marks the end of a JPEG image.
			data := buf.Bytes()
			if len(data) < 2 || data[len(data)-2] != 0xff || data[len(data)-1] != 0xd9 {
				continue
			}
			img, err := jpeg.Decode(bytes.NewReader(data))
			buf.Reset()
			if err != nil {
				send(Frame{Err: err})
				return
			}
			// Only this goroutine sends, so after draining the slot the send
			// cannot block.
			select {
			case frames <- Frame{Image: img}:
			default:
				select {
				case <-frames:
					dropped++
					Logger().Debug("dropped frame", zap.Int("dropped", dropped))
				default:
				}
				frames <- Frame{Image: img}
			}
		}
	}()
	return frames
}

// FrameRenderer turns a frame into the text to draw for it.
type FrameRenderer func(img image.Image) (string, error)

// Animator draws a frame stream to a terminal in place.
type Animator struct {
	w      io.Writer
	t      Terminal
	render FrameRenderer
}

// NewAnimator returns an Animator writing to w. If t is nil an Xterm on w is used.
func NewAnimator(w io.Writer, t Terminal, render FrameRenderer) *Animator {
	if t == nil {
		t = &Xterm{Writer: w}
	}
	return &Animator{w: w, t: t, render: render}
}

// Animate renders every frame read from r, at most fps per second, moving the
// cursor back over the previous frame each time. It returns nil at the end of
// the stream or when ctx is cancelled.
func (a *Animator) Animate(ctx context.Context, r io.Reader, fps int) error {
	if fps <= 0 {
		fps = 1
	}
	a.t.ShowCursor(false)
	defer a.t.ShowCursor(true)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reader := FrameReader{Reader: r}
	for frame := range reader.ReadAll(ctx) {
		if frame.Err != nil {
			return frame.Err
		}
		more, err := a.show(ctx, frame.Image, time.Second/time.Duration(fps))
		if err != nil || !more {
			return err
		}
	}
	return nil
}

// show renders img, draws it over the previous frame and holds it for delay.
// Rendering counts against delay. It reports false once ctx is done.
func (a *Animator) show(ctx context.Context, img image.Image, delay time.Duration) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	text, err := a.render(img)
	if err != nil {
		return false, err
	}
	if _, err := io.WriteString(a.w, text); err != nil {
		return false, err
	}
	a.t.ResetCursor(strings.Count(text, "\n"))

	select {
	case <-timer.C:
		return true, nil
	case <-ctx.Done():
		return false, nil
	}
}
