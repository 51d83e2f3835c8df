package browse

import "github.com/pkg/browser"

//go:generate mockgen -source=browse.go -destination=mock/browse.go -package=mock_browse

// Opener launches a URL in the user's default browser.
type Opener interface {
	Open(url string) error
}

type systemOpener struct{}

// NewOpener returns an Opener backed by the host OS "open URL" facility.
func NewOpener() Opener {
	return systemOpener{}
}

func (systemOpener) Open(url string) error {
	return browser.OpenURL(url)
}
