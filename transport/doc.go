// Package transport connects the overlay to a GStreamer pipeline.
//
// A [Host] parses a gst-launch style description, installs a buffer probe on
// the src pad of one named element and runs every NV12 buffer leaving it
// through a [FrameProcessor]:
//
//	filter := insertlogo.New(opts)
//	host, err := transport.NewHost(
//	    "videotestsrc num-buffers=300 ! video/x-raw,format=NV12,width=1280,height=720 ! "+
//	        "identity name=logo ! videoconvert ! autovideosink",
//	    "logo", filter, logrus.StandardLogger())
//	if err != nil {
//	    return err
//	}
//	return host.Run(ctx)
//
// # Frame Geometry
//
// The negotiated caps of the pad supply width and height on every buffer.
// Caps that are missing, not NV12, or carry a non-positive size are handed
// to the processor as a zero geometry, which latches a caps failure.
//
// # Buffer Layout
//
// Buffers are mapped writable and viewed in place. The host assumes the
// default GStreamer NV12 layout ([NV12Layout]): each row padded to four
// bytes and the chroma plane starting right after an even number of luma
// rows. Strides and offsets from a buffer's video meta are not read. A
// buffer whose size differs from the default layout is passed through
// untouched with a warning, since its planes cannot be located safely.
// Elements that negotiate custom strides, such as some hardware decoders,
// need a videoconvert before the overlaid element. [PackedLayout] describes
// raw dumps without row padding, as read by the file host in cmd/insertlogo.
//
// # Error Handling
//
// A fatal processor error drops the buffer and stops [Host.Run]. A frame
// rejected without latching is passed through untouched and logged.
package transport
