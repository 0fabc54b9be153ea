package impl

import (
	"context"
	"log/slog"
	"mime"
	"path"
	"strings"

	"feira/config"
	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	"feira/internal/errors"
	"feira/internal/usecase"
	"feira/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMaxImageSize int64 = 5 << 20

type productService struct {
	productRepo  repository.ProductRepository
	stallRepo    repository.StallRepository
	images       service.ImageStorage
	maxImageSize int64
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	StallRepo   repository.StallRepository
	Images      service.ImageStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	maxImageSize := defaultMaxImageSize
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageSize > 0 {
		maxImageSize = params.Config.Storage.MaxImageSize
	}

	return &productService{
		productRepo:  params.ProductRepo,
		stallRepo:    params.StallRepo,
		images:       params.Images,
		maxImageSize: maxImageSize,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct requires the owning stall to exist.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPrice, "failed to create product")
	}

	if err := srv.ensureStall(ctx, input.StallID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:      uuid.New(),
		StallID: input.StallID,
		Name:    strings.TrimSpace(input.Name),
		Price:   input.Price,
		Image:   input.Image,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("stallID", product.StallID.String()),
	)

	return product, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) ListProductsByStall(ctx context.Context, stallID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByStall(ctx, stallID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by stall")
	}

	return products, nil
}

// UpdateProduct re-validates the stall when the product moves to another one.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input entity.ProductPatch) (*entity.Product, error) {
	if price, ok := input.Price.Get(); ok && price < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPrice, "failed to update product")
	}

	if stallID, ok := input.StallID.Get(); ok {
		if err := srv.ensureStall(ctx, stallID); err != nil {
			return nil, err
		}
	}

	if err := srv.productRepo.Update(ctx, id, input); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.GetProduct(ctx, id)
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find product")
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.removeStoredImage(ctx, product.Image)

	return nil
}

// UploadProductImage stores the image in the bucket and points the product at
// it. A previously stored image is removed afterwards.
func (srv *productService) UploadProductImage(ctx context.Context, input usecase.UploadImageInput) (*entity.Product, error) {
	if len(input.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "empty image")
	}
	if int64(len(input.Data)) > srv.maxImageSize {
		tooLarge := domainerrors.ErrImageTooLarge.WithDetails("Limite de " + util.FormatBytes(srv.maxImageSize) + ".")
		return nil, errors.Wrapf(tooLarge, "image has %d bytes, limit is %d", len(input.Data), srv.maxImageSize)
	}
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "content type %q is not an image", input.ContentType)
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	key := imageKey(input.ProductID, input.Filename, input.ContentType, input.Data)
	storedKey, err := srv.images.Put(ctx, key, input.ContentType, input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store product image")
	}

	if err := srv.productRepo.Update(ctx, input.ProductID, entity.ProductPatch{Image: patch.Set(storedKey)}); err != nil {
		return nil, errors.Wrap(err, "failed to save product image reference")
	}

	if product.Image != nil && *product.Image != storedKey {
		srv.removeStoredImage(ctx, product.Image)
	}

	srv.log(ctx).Info("Product image uploaded",
		slog.String("productID", input.ProductID.String()),
		slog.String("key", storedKey),
		slog.Int("size", len(input.Data)),
	)

	return srv.GetProduct(ctx, input.ProductID)
}

// OpenProductImage opens a stored image. An image held as an external URL
// has nothing to open and is reported through RedirectURL instead.
func (srv *productService) OpenProductImage(ctx context.Context, id uuid.UUID) (*usecase.ProductImage, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.Image == nil || *product.Image == "" {
		return nil, errors.Wrap(domainerrors.ErrImageNotFound, "product has no image")
	}

	if isExternalImage(*product.Image) {
		return &usecase.ProductImage{RedirectURL: *product.Image}, nil
	}

	body, contentType, err := srv.images.Open(ctx, *product.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open product image")
	}

	return &usecase.ProductImage{Body: body, ContentType: contentType}, nil
}

func (srv *productService) ensureStall(ctx context.Context, stallID uuid.UUID) error {
	if _, err := srv.stallRepo.FindByID(ctx, stallID); err != nil {
		return errors.Wrap(err, "failed to find product stall")
	}

	return nil
}

func (srv *productService) removeStoredImage(ctx context.Context, image *string) {
	removeStoredImage(ctx, srv.log(ctx), srv.images, image)
}

// removeStoredImage deletes a bucket object, logging instead of failing.
// External URLs are left alone.
func removeStoredImage(ctx context.Context, logger *slog.Logger, images service.ImageStorage, image *string) {
	if image == nil || *image == "" || isExternalImage(*image) {
		return
	}

	if err := images.Delete(ctx, *image); err != nil && !errors.Is(err, domainerrors.ErrImageNotFound) {
		logger.Warn("Failed to remove product image", slog.String("key", *image), slog.Any("error", err))
	}
}

func isExternalImage(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// imageKey addresses an image by its content, so uploading the same bytes
// again keeps the stored object.
func imageKey(productID uuid.UUID, filename, contentType string, data []byte) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}

	return path.Join("products", productID.String(), util.Checksum(data)[:16]+ext)
}
