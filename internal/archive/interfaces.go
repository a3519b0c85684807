package archive

import (
	"github.com/kaanaksulu/heic-flip/internal/model"
)

// Saver offers a byte payload to the user as a named download. The directory
// implementation writes into the downloads folder; tests substitute fakes.
type Saver interface {
	Save(name string, data []byte) (path string, err error)
}

// Packager defines the interface for the batch packaging service.
type Packager interface {
	DeliverAll(results []model.ConversionResult, descriptor string, format model.Format) (*Delivery, error)
	DeliverOne(result model.ConversionResult) (string, error)
}
