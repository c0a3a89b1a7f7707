// Package face abstracts the face-capture capability. The actual detection
// model is an opaque third party (it runs client-side in the web app); the
// server only depends on this interface so the model stays swappable.
package face

import "errors"

var ErrNoFaceDetected = errors.New("no face detected in capture")

type Detector interface {
	// Detect reports whether the capture contains a face.
	Detect(image []byte) (bool, error)
}

// ClientAttested trusts the client-side model's capture gate: the browser
// only submits a photo after its detector fired. The server side rejects
// empty captures and accepts the rest.
type ClientAttested struct{}

func (ClientAttested) Detect(image []byte) (bool, error) {
	return len(image) > 0, nil
}
