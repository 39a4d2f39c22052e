package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/snackhub/catalog-backend/internal/usecase"
	"github.com/snackhub/catalog-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Создание продукта
//	@Description	Создает новый продукт каталога
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Данные продукта"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateProduct(r)
	if err != nil {
		p.logger.Warnf("createProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.CreateProduct(r.Context(), usecase.NewCreateProductReq(req.Name, req.Description, req.Price, req.Category))
	if err != nil {
		p.logger.Warnf("createProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(res))
}

// findProductByID
//
//	@Summary	Продукт по идентификатору
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор продукта"
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse	"Продукт не найден"
//	@Router		/products/{id} [get]
func (p *ProductHandler) findProductByID(w http.ResponseWriter, r *http.Request) {
	res, err := p.productUsecase.FindProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("findProductByID: %s", err.Error())
		WriteError(w, err)
		return
	}
	if res == nil {
		WriteNotFound(w)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(res))
}

// findAllProducts
//
//	@Summary	Все продукты каталога
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products [get]
func (p *ProductHandler) findAllProducts(w http.ResponseWriter, r *http.Request) {
	results, err := p.productUsecase.FindAllProducts(r.Context())
	if err != nil {
		p.logger.Warnf("findAllProducts: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(results))
}

// deleteProductByID
//
//	@Summary	Удаление продукта
//	@Tags		products
//	@Produce	json
//	@Param		id	path	string	true	"Идентификатор продукта"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse	"Продукт не найден или некорректный идентификатор"
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProductByID(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.DeleteProductByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		p.logger.Warnf("deleteProductByID: %s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// findProductsByCategory
//
//	@Summary	Продукты категории
//	@Tags		products
//	@Produce	json
//	@Param		category	path	string	true	"Категория"
//	@Success	200	{array}		ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products/category/{category} [get]
func (p *ProductHandler) findProductsByCategory(w http.ResponseWriter, r *http.Request) {
	results, err := p.productUsecase.FindProductsByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		p.logger.Warnf("findProductsByCategory: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(results))
}

// findProductsOnPromotion
//
//	@Summary	Продукты с действующей акцией
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	ProductResponse
//	@Router		/products/promotions [get]
func (p *ProductHandler) findProductsOnPromotion(w http.ResponseWriter, r *http.Request) {
	results, err := p.productUsecase.FindProductsOnPromotion(r.Context())
	if err != nil {
		p.logger.Warnf("findProductsOnPromotion: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(results))
}

// findProductsByName
//
//	@Summary	Поиск продуктов по подстроке имени
//	@Tags		products
//	@Produce	json
//	@Param		name	query	string	true	"Подстрока имени"
//	@Success	200	{array}		ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products/search [get]
func (p *ProductHandler) findProductsByName(w http.ResponseWriter, r *http.Request) {
	results, err := p.productUsecase.FindProductsByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		p.logger.Warnf("findProductsByName: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(results))
}

// findProductsByPriceRange
//
//	@Summary	Продукты категории в диапазоне цен
//	@Tags		products
//	@Produce	json
//	@Param		category	path	string	true	"Категория"
//	@Param		min_price	query	number	true	"Минимальная цена"
//	@Param		max_price	query	number	true	"Максимальная цена"
//	@Success	200	{array}		ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products/category/{category}/price-range [get]
func (p *ProductHandler) findProductsByPriceRange(w http.ResponseWriter, r *http.Request) {
	req, err := p.parsePriceRange(r)
	if err != nil {
		p.logger.Warnf("findProductsByPriceRange: %s", err.Error())
		WriteError(w, err)
		return
	}

	results, err := p.productUsecase.FindProductsByCategoryAndPriceRange(r.Context(), req)
	if err != nil {
		p.logger.Warnf("findProductsByPriceRange: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(results))
}

// findProductsByPriceRangeManual
//
//	@Summary	Продукты категории в диапазоне цен (явный запрос)
//	@Description	Та же выборка, что и /price-range, но через явно построенный запрос хранилища
//	@Tags		products
//	@Produce	json
//	@Param		category	path	string	true	"Категория"
//	@Param		min_price	query	number	true	"Минимальная цена"
//	@Param		max_price	query	number	true	"Максимальная цена"
//	@Success	200	{array}		ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Router		/products/category/{category}/price-range-manual [get]
func (p *ProductHandler) findProductsByPriceRangeManual(w http.ResponseWriter, r *http.Request) {
	req, err := p.parsePriceRange(r)
	if err != nil {
		p.logger.Warnf("findProductsByPriceRangeManual: %s", err.Error())
		WriteError(w, err)
		return
	}

	results, err := p.productUsecase.FindProductsByCategoryAndPriceRangeManual(r.Context(), req)
	if err != nil {
		p.logger.Warnf("findProductsByPriceRangeManual: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewArrProductResponse(results))
}

func (p *ProductHandler) parsePriceRange(r *http.Request) (*usecase.PriceRangeReq, error) {
	minPrice, err := parsePriceParam(r, "min_price")
	if err != nil {
		return nil, err
	}

	maxPrice, err := parsePriceParam(r, "max_price")
	if err != nil {
		return nil, err
	}

	return usecase.NewPriceRangeReq(chi.URLParam(r, "category"), minPrice, maxPrice), nil
}
