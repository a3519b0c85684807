package archive

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/kaanaksulu/heic-flip/internal/model"
)

// Deflate level for batch archives. A moderate default, not tuned for ratio
// or speed.
const ZipCompressionLevel = 6

// ErrNothingToDeliver is returned when a batch holds no successful results.
var ErrNothingToDeliver = errors.New("no successful conversions to download")

// DeliveryKind describes how a batch was handed to the user.
type DeliveryKind string

const (
	// DeliverySingle means the only successful result was saved directly.
	DeliverySingle DeliveryKind = "single"

	// DeliveryArchive means all successful results went into one zip.
	DeliveryArchive DeliveryKind = "archive"

	// DeliveryIndividual means archiving failed and each result was saved
	// on its own as a fallback.
	DeliveryIndividual DeliveryKind = "individual"
)

// Delivery reports what was saved where.
type Delivery struct {
	Kind    DeliveryKind
	Paths   []string
	Warning string // set when the archive fallback was taken
}

// Service bundles successful results for one-shot download. Archive
// construction happens fully in memory; only the Saver touches disk.
type Service struct {
	saver Saver
	now   func() time.Time
}

// NewService creates a new packaging service on top of the given saver.
func NewService(saver Saver) *Service {
	return &Service{
		saver: saver,
		now:   time.Now,
	}
}

// DeliverOne saves a single successful result under its derived output name
// and returns the saved path.
func (s *Service) DeliverOne(result model.ConversionResult) (string, error) {
	if result.Failed() {
		return "", fmt.Errorf("cannot save failed result %s", result.SourceName)
	}
	return s.saver.Save(result.OutputName, result.Data)
}

// DeliverAll offers every successful result to the user: directly when there
// is exactly one, as a single zip when there are more. If the archive cannot
// be built or saved, it falls back to individual saves so the user is never
// left without their outputs.
func (s *Service) DeliverAll(results []model.ConversionResult, descriptor string, format model.Format) (*Delivery, error) {
	var succeeded []model.ConversionResult
	for _, r := range results {
		if !r.Failed() {
			succeeded = append(succeeded, r)
		}
	}

	if len(succeeded) == 0 {
		return nil, ErrNothingToDeliver
	}

	if len(succeeded) == 1 {
		path, err := s.DeliverOne(succeeded[0])
		if err != nil {
			return nil, err
		}
		return &Delivery{Kind: DeliverySingle, Paths: []string{path}}, nil
	}

	path, err := s.deliverArchive(succeeded, descriptor, format)
	if err == nil {
		return &Delivery{Kind: DeliveryArchive, Paths: []string{path}}, nil
	}

	log.Printf("Archive delivery failed, falling back to individual saves: %v", err)
	return s.deliverIndividually(succeeded, err)
}

// deliverArchive zips all results and saves the archive under its dated name.
func (s *Service) deliverArchive(results []model.ConversionResult, descriptor string, format model.Format) (string, error) {
	data, err := buildZip(results)
	if err != nil {
		return "", fmt.Errorf("failed to build archive: %w", err)
	}
	return s.saver.Save(s.archiveName(descriptor, format, len(results)), data)
}

func (s *Service) deliverIndividually(results []model.ConversionResult, archiveErr error) (*Delivery, error) {
	delivery := &Delivery{
		Kind:    DeliveryIndividual,
		Warning: "failed to create zip file, files were saved individually",
	}

	var firstErr error
	for _, r := range results {
		path, err := s.saver.Save(r.OutputName, r.Data)
		if err != nil {
			log.Printf("Individual save failed for %s: %v", r.OutputName, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		delivery.Paths = append(delivery.Paths, path)
	}

	if len(delivery.Paths) == 0 {
		return nil, fmt.Errorf("archive failed (%v) and no file could be saved individually: %w", archiveErr, firstErr)
	}
	return delivery, nil
}

// archiveName builds `<descriptor>-<FORMAT>-<count>-files-<ISO-date>.zip`,
// e.g. "heic-converted-JPG-3-files-2026-09-01.zip".
func (s *Service) archiveName(descriptor string, format model.Format, count int) string {
	label := strings.ToUpper(strings.TrimPrefix(format.Extension(), "."))
	date := s.now().Format("2006-01-02")
	return fmt.Sprintf("%s-%s-%d-files-%s.zip", descriptor, label, count, date)
}

// buildZip writes every result into an in-memory deflate archive, each entry
// under its derived output name.
func buildZip(results []model.ConversionResult) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, ZipCompressionLevel)
	})

	for _, r := range results {
		w, err := zw.Create(r.OutputName)
		if err != nil {
			zw.Close()
			return nil, err
		}
		if _, err := w.Write(r.Data); err != nil {
			zw.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
