// Package carveapi handles carve job creation and program download.
package carveapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gridcarve/carver-api/api/identity"
	dmn "github.com/gridcarve/carver-api/domain"
	"github.com/gridcarve/carver-api/service/i"
)

// CarveController manages carving operations.
type CarveController struct {
	carver i.Carver
}

// NewCarveController initializes a CarveController.
func NewCarveController(carver i.Carver) (*CarveController, error) {
	if carver == nil {
		return nil, errors.New("carve controller requires a carver")
	}
	return &CarveController{
		carver: carver,
	}, nil
}

// RegisterPublic registers public routes.
func (cc *CarveController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (cc *CarveController) RegisterProtected(route *gin.RouterGroup) {
	carvings := route.Group("/carvings")
	{
		carvings.POST("/", cc.carve)
		carvings.GET("/", cc.list)
		carvings.GET("/:ID", cc.carvingInfo)
		carvings.GET("/:ID/gcode", cc.program)
	}
}

// carve handles carve creation requests.
func (cc *CarveController) carve(ctx *gin.Context) {
	var request CarveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	owner, err := ownerID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	carving, err := cc.carver.Carve(ctx.Request.Context(), owner, i.CarveRequest{
		Rows:       request.Rows,
		Cols:       request.Cols,
		Seed:       request.Seed,
		StepSizeMM: request.StepSizeMM,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toCarvingResponse(carving))
}

// list returns the caller's carvings.
func (cc *CarveController) list(ctx *gin.Context) {
	owner, err := ownerID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	carvings, err := cc.carver.ByOwner(ctx.Request.Context(), owner)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]CarvingResponse, 0, len(carvings))
	for _, c := range carvings {
		response = append(response, toCarvingResponse(c))
	}
	ctx.JSON(http.StatusOK, response)
}

// carvingInfo retrieves metadata about a specific carving.
func (cc *CarveController) carvingInfo(ctx *gin.Context) {
	carving, ok := cc.ownedCarving(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, toCarvingResponse(carving))
}

// program downloads a carving's motion program as plain text, one
// instruction per line.
func (cc *CarveController) program(ctx *gin.Context) {
	carving, ok := cc.ownedCarving(ctx)
	if !ok {
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(strings.Join(carving.Program, "\n")+"\n"))
}

// ownedCarving loads the carving in the :ID param and checks it belongs to
// the caller. Writes the error response itself when it returns false.
func (cc *CarveController) ownedCarving(ctx *gin.Context) (*dmn.Carving, bool) {
	owner, err := ownerID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return nil, false
	}

	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid carving id"})
		return nil, false
	}

	carving, err := cc.carver.ByID(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}

	if carving.OwnerID != owner {
		ctx.Status(http.StatusForbidden)
		return nil, false
	}
	return carving, true
}

// ownerID extracts the authenticated user's ID from the claims the
// authorization middleware attached.
func ownerID(ctx *gin.Context) (uuid.UUID, error) {
	raw, exists := ctx.Get(identity.ContextUserClaims)
	if !exists {
		return uuid.Nil, errors.New("missing claims")
	}

	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("malformed claims")
	}

	id, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing user id claim")
	}
	return uuid.Parse(id)
}
