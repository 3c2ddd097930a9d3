package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageService uploads product galleries and brand logos to Cloudinary and
// hands back the secure delivery URLs.
type ImageService struct {
	cld *cloudinary.Cloudinary
}

func NewImageService(cloudName, apiKey, apiSecret string) (*ImageService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &ImageService{cld: cld}, nil
}

func (s *ImageService) upload(ctx context.Context, file multipart.File, publicID, folder string) (string, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if publicID != "" {
		params.PublicID = publicID
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload returned no URL")
	}
	return result.SecureURL, nil
}

// UploadProductImages stores a product's gallery under its slug and returns
// the URLs in upload order.
func (s *ImageService) UploadProductImages(ctx context.Context, files []*multipart.FileHeader, productSlug string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for i, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", header.Filename, err)
		}

		url, err := s.upload(ctx, file, fmt.Sprintf("%s_%d", productSlug, i), "products/"+productSlug)
		file.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// UploadBrandLogo stores a brand logo and returns its URL.
func (s *ImageService) UploadBrandLogo(ctx context.Context, header *multipart.FileHeader, brandSlug string) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", header.Filename, err)
	}
	defer file.Close()

	return s.upload(ctx, file, brandSlug, "brands")
}

// DeleteProductImages removes every asset under the product's folder. Used
// when a seller deletes a product.
func (s *ImageService) DeleteProductImages(ctx context.Context, productSlug string) error {
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{"products/" + productSlug},
	})
	if err != nil {
		return fmt.Errorf("delete product images: %w", err)
	}

	// empty folders are cleaned up best effort; Cloudinary drops them on
	// its own eventually
	s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: "products/" + productSlug})
	return nil
}
