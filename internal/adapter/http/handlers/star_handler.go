package handlers

import (
	"errors"
	"net/http"

	response "inhouse/internal/adapter/http/dto/response"
	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase"
	"inhouse/pkg"

	"github.com/gin-gonic/gin"
)

// StarHandler manages the favourites of the request user.

type StarHandler struct {
	usecase usecase.IStarUseCase
}

func NewStarHandler(uc usecase.IStarUseCase) *StarHandler {
	return &StarHandler{usecase: uc}
}

// @Summary Star an object
// @Tags stars
// @Produce json
// @Param kind path string true "booking, project or customer"
// @Param object_id path string true "Object id"
// @Param X-User-ID header string true "Request user id"
// @Success 200 {object} response.StarResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /stars/{kind}/{object_id} [put]
func (h *StarHandler) Add(c *gin.Context) {
	kind := entities.StarKind(c.Param("kind"))
	objectID := c.Param("object_id")
	if err := h.usecase.Add(c.Request.Context(), actorFrom(c), kind, objectID); err != nil {
		respondError(c, mapStarError(err))
		return
	}
	c.JSON(http.StatusOK, response.StarResponse{Kind: string(kind), ObjectID: objectID, Starred: true})
}

// @Summary Remove a star
// @Tags stars
// @Produce json
// @Param kind path string true "booking, project or customer"
// @Param object_id path string true "Object id"
// @Param X-User-ID header string true "Request user id"
// @Success 200 {object} response.StarResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /stars/{kind}/{object_id} [delete]
func (h *StarHandler) Remove(c *gin.Context) {
	kind := entities.StarKind(c.Param("kind"))
	objectID := c.Param("object_id")
	if err := h.usecase.Remove(c.Request.Context(), actorFrom(c), kind, objectID); err != nil {
		respondError(c, mapStarError(err))
		return
	}
	c.JSON(http.StatusOK, response.StarResponse{Kind: string(kind), ObjectID: objectID, Starred: false})
}

// @Summary Check whether an object is starred
// @Tags stars
// @Produce json
// @Param kind path string true "booking, project or customer"
// @Param object_id path string true "Object id"
// @Param X-User-ID header string true "Request user id"
// @Success 200 {object} response.StarResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /stars/{kind}/{object_id} [get]
func (h *StarHandler) Get(c *gin.Context) {
	kind := entities.StarKind(c.Param("kind"))
	objectID := c.Param("object_id")
	starred, err := h.usecase.IsStarred(c.Request.Context(), actorFrom(c), kind, objectID)
	if err != nil {
		respondError(c, mapStarError(err))
		return
	}
	c.JSON(http.StatusOK, response.StarResponse{Kind: string(kind), ObjectID: objectID, Starred: starred})
}

// @Summary List starred object ids
// @Tags stars
// @Produce json
// @Param kind path string true "booking, project or customer"
// @Param X-User-ID header string true "Request user id"
// @Success 200 {object} response.StarListResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 401 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /stars/{kind} [get]
func (h *StarHandler) List(c *gin.Context) {
	kind := entities.StarKind(c.Param("kind"))
	ids, err := h.usecase.List(c.Request.Context(), actorFrom(c), kind)
	if err != nil {
		respondError(c, mapStarError(err))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, response.StarListResponse{Kind: string(kind), ObjectIDs: ids})
}

func mapStarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActor):
		return errMissingUser
	case errors.Is(err, usecase.ErrInvalidStarKind):
		return pkg.NewDomainErrorSimple("INVALID_STAR_KIND", "Unknown star kind", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidObjectID):
		return pkg.NewDomainErrorSimple("INVALID_OBJECT_ID", "Invalid object id", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
