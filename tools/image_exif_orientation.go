package tools

import (
	"image"
	"mime/multipart"

	"cloud.google.com/go/logging"
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// TryFindExifOrientation reads the EXIF orientation tag of an uploaded photo.
// Missing or mangled EXIF falls back to the default orientation 1 without an
// error; phones routinely strip it and that must not block an upload. The
// error return is reserved for a failed rewind, after which the file offset
// is unknown and the caller must not read from it.
func TryFindExifOrientation(logger *logging.Logger, file multipart.File) (int, error) {
	x, decodeErr := exif.Decode(file)

	if _, err := file.Seek(0, 0); err != nil {
		if logger != nil {
			logger.Log(logging.Entry{
				Severity: logging.Error,
				Payload:  "Error resetting file pointer",
				Labels:   map[string]string{"error": err.Error()},
			})
		}
		return 1, err
	}

	if decodeErr != nil {
		if logger != nil {
			logger.Log(logging.Entry{
				Severity: logging.Warning,
				Payload:  "Warning decoding EXIF data, applying default photo orientation.",
				Labels:   map[string]string{"error": decodeErr.Error()},
			})
		}
		return 1, nil
	}

	orientTag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1, nil
	}

	orientation, err := orientTag.Int(0)
	if err != nil {
		return 1, nil
	}

	return orientation, nil
}

// CorrectImageOrientation applies the transform the EXIF orientation value
// calls for.
func CorrectImageOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func GetImageDimensions(img image.Image) (int, int) {
	return img.Bounds().Dx(), img.Bounds().Dy()
}
