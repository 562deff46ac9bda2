// Package asset locates and decodes the overlay image.
//
// Logo files must exist and carry a lower-case ".png" extension. When the
// configured file fails either check, [DefaultPath] names the fallback
// "logo.png" in the process working directory.
//
// Decoding goes through the [Decoder] interface so callers can substitute
// in-memory images in tests:
//
//	var dec asset.Decoder = asset.FileDecoder{}
//	img, err := dec.Decode(path)
//	if err != nil {
//	    return err
//	}
//	sum := asset.Fingerprint(img)
//
// Decoded images are always straight-alpha [image.NRGBA] anchored at the
// origin, which is the layout the compositor reads.
package asset
