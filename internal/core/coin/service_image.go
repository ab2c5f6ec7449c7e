// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package coin

import (
	"context"
	"log/slog"

	"github.com/taibuivan/moneta/internal/platform/apperr"
	"github.com/taibuivan/moneta/pkg/imageid"
)

// # Image Identity

// imageIDs derives one key per attached view, skipping views whose key
// cannot be derived yet.
func imageIDs(coin *Coin) []string {
	ids := make([]string, 0, len(coin.Views))
	for _, view := range coin.Views {
		if id := imageid.Make(coin.ImageInput(view)); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// PreviewImageID is the form helper behind POST /coins/image-id.
func (service *Service) PreviewImageID(input imageid.Input) ImagePreview {
	return PreviewImageID(input)
}

/*
PreviewImageID derives the key an editing form is about to produce.

When no key can be derived the preview carries [HintInvalidImageID] and the
names of the inputs that block derivation.
*/
func PreviewImageID(input imageid.Input) ImagePreview {
	if id := imageid.Make(input); id != "" {
		return ImagePreview{ID: id, Valid: true}
	}

	var missing []string
	if imageid.AcquisitionToken(input.AcquisitionDate) == "" {
		missing = append(missing, FieldAcquiredDate)
	}
	if imageid.RootToken(input.Nickname, input.Denomination) == "" {
		missing = append(missing, FieldNickname)
	}
	if !input.View.IsValid() {
		missing = append(missing, "view")
	}
	if !imageid.HasValidSource(input.Vendor, input.PhotographedByCurator) {
		missing = append(missing, FieldVendor)
	}

	return ImagePreview{Hint: HintInvalidImageID, Missing: missing}
}

/*
Images returns presigned URLs for the photographs of a coin.

Views whose key cannot be derived, or whose object has not been uploaded
yet, are left out.

Returns:
  - []Image: One entry per uploaded view, in view order
  - error: NOT_FOUND for an unknown coin, SERVICE_UNAVAILABLE without a bucket
*/
func (service *Service) Images(context context.Context, identifier string) ([]Image, error) {
	if service.images == nil {
		return nil, apperr.Unavailable("Image storage is not configured")
	}

	coin, err := service.Get(context, identifier)
	if err != nil {
		return nil, err
	}

	images := make([]Image, 0, len(coin.Views))
	for _, view := range coin.Views {
		id := imageid.Make(coin.ImageInput(view))
		if id == "" {
			continue
		}

		exists, err := service.images.Exists(context, id)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if !exists {
			service.logger.DebugContext(context, "coin_image_missing", slog.Int("coin_id", coin.ID), slog.String("image_id", id))
			continue
		}

		url, err := service.images.PresignGet(context, id, service.imageTTL)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		images = append(images, Image{View: view, ID: id, URL: url})
	}

	return images, nil
}
