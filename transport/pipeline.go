package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tinyzimmer/go-gst/gst"
)

// busPollInterval bounds how long the bus loop waits before rechecking
// the context and the overlay state.
const busPollInterval = 50 * time.Millisecond

var (
	// ErrElementNotFound is returned when the overlay element name is not in
	// the pipeline.
	ErrElementNotFound = errors.New("overlay element not found in pipeline")

	// ErrPipelineFailed wraps an error message posted on the pipeline bus.
	ErrPipelineFailed = errors.New("pipeline error")

	gstInitOnce sync.Once
)

// Host runs a GStreamer pipeline and feeds every buffer leaving the named
// element's src pad through a FrameProcessor.
type Host struct {
	pipeline  *gst.Pipeline
	element   *gst.Element
	processor FrameProcessor
	log       *logrus.Entry

	mu     sync.Mutex
	layout Layout
	frames uint64
	fatal  chan error
}

// NewHost parses a gst-launch style description. element names the element
// whose output is overlaid; an identity element works well:
//
//	videotestsrc ! video/x-raw,format=NV12,width=1280,height=720 ! identity name=logo ! autovideosink
func NewHost(launch, element string, processor FrameProcessor, logger *logrus.Logger) (*Host, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithFields(logrus.Fields{
		"package": "transport",
		"element": element,
	})

	gstInitOnce.Do(func() { gst.Init(nil) })

	pipeline, err := gst.NewPipelineFromString(launch)
	if err != nil {
		log.WithFields(logrus.Fields{
			"function": "NewHost",
			"error":    err.Error(),
		}).Error("Failed to parse pipeline")
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	elem, err := pipeline.GetElementByName(element)
	if err != nil || elem == nil {
		return nil, fmt.Errorf("%w: %q", ErrElementNotFound, element)
	}

	h := &Host{
		pipeline:  pipeline,
		element:   elem,
		processor: processor,
		log:       log,
		fatal:     make(chan error, 1),
	}

	pad := elem.GetStaticPad("src")
	if pad == nil {
		return nil, fmt.Errorf("%w: %q has no src pad", ErrElementNotFound, element)
	}
	pad.AddProbe(gst.PadProbeTypeBuffer, h.probe)

	log.WithFields(logrus.Fields{
		"function": "NewHost",
	}).Debug("Overlay probe installed")

	return h, nil
}

// Frames returns the number of buffers overlaid so far.
func (h *Host) Frames() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// Run plays the pipeline until end of stream, a bus error, a fatal overlay
// error, or cancellation of ctx. The pipeline is always left in the NULL
// state.
func (h *Host) Run(ctx context.Context) error {
	if err := h.pipeline.SetState(gst.StatePlaying); err != nil {
		return fmt.Errorf("failed to start pipeline: %w", err)
	}
	defer h.pipeline.SetState(gst.StateNull)

	h.log.WithFields(logrus.Fields{
		"function": "Host.Run",
	}).Info("Pipeline playing")

	bus := h.pipeline.GetPipelineBus()
	for {
		select {
		case <-ctx.Done():
			h.log.WithFields(logrus.Fields{
				"function": "Host.Run",
				"frames":   h.Frames(),
			}).Info("Pipeline stopped")
			return ctx.Err()
		case err := <-h.fatal:
			return err
		default:
		}

		msg := bus.TimedPop(busPollInterval)
		if msg == nil {
			continue
		}

		switch msg.Type() {
		case gst.MessageEOS:
			h.log.WithFields(logrus.Fields{
				"function": "Host.Run",
				"frames":   h.Frames(),
			}).Info("End of stream")
			return h.processor.Err()
		case gst.MessageError:
			gerr := msg.ParseError()
			h.log.WithFields(logrus.Fields{
				"function": "Host.Run",
				"source":   msg.Source(),
				"error":    gerr.Error(),
				"debug":    gerr.DebugString(),
			}).Error("Pipeline error")
			return fmt.Errorf("%w: %s", ErrPipelineFailed, gerr.Error())
		case gst.MessageStateChanged:
			if msg.Source() != h.pipeline.GetName() {
				continue
			}
			oldState, newState := msg.ParseStateChanged()
			h.log.WithFields(logrus.Fields{
				"function": "Host.Run",
				"from":     oldState.String(),
				"to":       newState.String(),
			}).Debug("Pipeline state changed")
		}
	}
}

// probe maps each buffer writable and hands it to the processor. A buffer
// is dropped once the processor has latched a fatal error.
func (h *Host) probe(pad *gst.Pad, info *gst.PadProbeInfo) gst.PadProbeReturn {
	buffer := info.GetBuffer()
	if buffer == nil {
		return gst.PadProbeOK
	}

	width, height, err := CapsGeometry(pad.GetCurrentCaps())
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"function": "Host.probe",
			"error":    err.Error(),
		}).Error("Unusable caps")
		// A non-positive size latches the caps failure in the processor.
		width, height = 0, 0
	}
	if err := h.processor.SetGeometry(width, height); err != nil {
		h.report(err)
		return gst.PadProbeDrop
	}

	mapInfo := buffer.Map(gst.MapWrite)
	if mapInfo == nil {
		h.log.WithFields(logrus.Fields{
			"function": "Host.probe",
		}).Warn("Buffer not writable, passed through")
		return gst.PadProbeOK
	}
	defer buffer.Unmap()

	if err := h.process(mapInfo.AsUint8Slice(), width, height); err != nil {
		if h.processor.Err() != nil {
			h.report(err)
			return gst.PadProbeDrop
		}
		h.log.WithFields(logrus.Fields{
			"function": "Host.probe",
			"error":    err.Error(),
		}).Warn("Buffer skipped")
	}

	return gst.PadProbeOK
}

// process overlays one mapped NV12 buffer. Only buffers sized exactly as the
// default layout are touched; anything else is padded or offset differently
// and would be misaddressed.
func (h *Host) process(data []byte, width, height int) error {
	h.mu.Lock()
	if h.layout.Width != width || h.layout.Height != height {
		h.layout = NV12Layout(width, height)
	}
	layout := h.layout
	h.mu.Unlock()

	if len(data) != layout.Size {
		return fmt.Errorf("%w: have %d bytes, default layout for %dx%d is %d",
			ErrLayoutMismatch, len(data), width, height, layout.Size)
	}

	frame, err := layout.Frame(data)
	if err != nil {
		return err
	}
	if err := h.processor.ProcessFrame(frame); err != nil {
		return err
	}

	h.mu.Lock()
	h.frames++
	h.mu.Unlock()
	return nil
}

// report hands the first fatal error to Run without blocking the
// streaming thread.
func (h *Host) report(err error) {
	select {
	case h.fatal <- err:
	default:
	}
}
