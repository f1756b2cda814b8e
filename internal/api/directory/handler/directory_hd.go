package directoryHandler

import (
	"AgriVision/internal/api/directory"
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/handlerUtil"
	jwtPkg "AgriVision/pkg/jwt"
	"AgriVision/pkg/log"
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *DirectoryHandler) GetSchemes(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	limit := directory.DefaultSchemeLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errHandler.Handle(ctx, requestID, directory.ErrInvalidLimit, ctx.Path(), "get_schemes")
		}
		limit = parsed
	}

	schemes, err := h.directoryService.TopActiveSchemes(c, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_schemes")
	}

	resp := directory.SchemeListResponse{
		Schemes: make([]directory.SchemeResponse, 0, len(schemes)),
		Total:   len(schemes),
	}
	for _, s := range schemes {
		resp.Schemes = append(resp.Schemes, directory.SchemeResponse{
			ID:                 s.ID,
			Title:              s.Title,
			Description:        s.Description,
			Eligibility:        s.Eligibility,
			Benefits:           s.Benefits,
			ApplicationProcess: s.ApplicationProcess,
			Deadline:           s.Deadline,
			CreatedAt:          s.CreatedAt,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *DirectoryHandler) SearchPesticides(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	pesticides, err := h.directoryService.SearchPesticides(c, ctx.Query("q"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_pesticides")
	}

	resp := directory.PesticideListResponse{
		Pesticides: make([]directory.PesticideResponse, 0, len(pesticides)),
		Total:      len(pesticides),
	}
	for _, p := range pesticides {
		resp.Pesticides = append(resp.Pesticides, directory.PesticideResponse{
			ID:                 p.ID,
			Name:               p.Name,
			Company:            p.Company,
			UsageInfo:          p.UsageInfo,
			CropApplicable:     p.CropApplicable,
			SafetyInstructions: p.SafetyInstructions,
			Dosage:             p.Dosage,
		})
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *DirectoryHandler) SearchShops(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	shops, err := h.directoryService.SearchShops(c, ctx.Query("q"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_shops")
	}

	resp := directory.ShopListResponse{
		Shops: make([]directory.ShopResponse, 0, len(shops)),
		Total: len(shops),
	}
	for _, s := range shops {
		resp.Shops = append(resp.Shops, toShopResponse(s))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *DirectoryHandler) CreateShop(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req directory.CreateShopRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"user_id":    userData.ID,
		"shop_name":  req.Name,
	}).Debug("Processing create shop request")

	shop, err := h.directoryService.CreateShop(contextPkg.WithUserID(c, userData.ID), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_shop")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, toShopResponse(shop))
	}
}

func toShopResponse(s entity.Shop) directory.ShopResponse {
	return directory.ShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		City:        s.City,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Phone:       s.Phone,
		Rating:      s.Rating,
		OpenNow:     s.OpenNow,
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
		Products:    s.Products,
	}
}
