package stubapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventarioapp/inventory-client/internal/infrastructure/rest"
)

// listEnvelope renders a collection response. An empty collection is encoded
// as the numeric zero sentinel, matching the production API's quirk.
func listEnvelope(items any, n int) map[string]any {
	if n == 0 {
		return map[string]any{"data": 0}
	}
	return map[string]any{"data": items}
}

func errorEnvelope(detail string) map[string]any {
	return map[string]any{"errors": []map[string]string{{"detail": detail}}}
}

func pathID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil && id > 0
}

func productResource(p productRecord) rest.ProductResource {
	return rest.ProductResource{
		Type: "products",
		ID:   p.ID,
		Attributes: rest.ProductAttributes{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		},
	}
}

func userResource(u userRecord) rest.UserResource {
	return rest.UserResource{
		Type: "users",
		ID:   u.ID,
		Attributes: rest.UserAttributes{
			FullName: u.FullName,
			Email:    u.Email,
		},
	}
}

// --- products ---

func (s *Server) listProducts(c echo.Context) error {
	records := s.store.ListProducts()
	resources := make([]rest.ProductResource, 0, len(records))
	for _, p := range records {
		resources = append(resources, productResource(p))
	}
	return c.JSON(http.StatusOK, listEnvelope(resources, len(resources)))
}

func (s *Server) getProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid product id"))
	}

	p, found := s.store.GetProduct(id)
	if !found {
		return c.JSON(http.StatusOK, map[string]any{"data": nil})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": productResource(p)})
}

func (s *Server) createProduct(c echo.Context) error {
	var req rest.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid payload"))
	}
	if req.Name == "" || req.Price < 0 || req.Quantity < 0 {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid product data"))
	}

	p := s.store.CreateProduct(req.Name, req.Price, req.Quantity)
	s.logger.Info().Int("id", p.ID).Str("name", p.Name).Msg("stub product created")
	return c.JSON(http.StatusCreated, map[string]any{"data": productResource(p)})
}

func (s *Server) updateProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid product id"))
	}

	var req rest.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid payload"))
	}

	p, found := s.store.UpdateProduct(id, req.Name, req.Price, req.Quantity)
	if !found {
		return c.JSON(http.StatusNotFound, errorEnvelope("product not found"))
	}
	return c.JSON(http.StatusOK, map[string]any{"data": productResource(p)})
}

func (s *Server) deleteProduct(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid product id"))
	}

	if !s.store.DeleteProduct(id) {
		return c.JSON(http.StatusNotFound, errorEnvelope("product not found"))
	}
	return c.JSON(http.StatusOK, map[string]any{"data": nil})
}

// --- users ---

func (s *Server) listUsers(c echo.Context) error {
	records := s.store.ListUsers()
	resources := make([]rest.UserResource, 0, len(records))
	for _, u := range records {
		resources = append(resources, userResource(u))
	}
	return c.JSON(http.StatusOK, listEnvelope(resources, len(resources)))
}

func (s *Server) getUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid user id"))
	}

	u, found := s.store.GetUser(id)
	if !found {
		return c.JSON(http.StatusOK, map[string]any{"data": nil})
	}
	return c.JSON(http.StatusOK, map[string]any{"data": userResource(u)})
}

func (s *Server) registerUser(c echo.Context) error {
	var req rest.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid payload"))
	}
	if req.FullName == "" || req.Email == "" || req.PasswordHash == "" {
		return c.JSON(http.StatusBadRequest, errorEnvelope("missing required fields"))
	}

	credential, err := bcrypt.GenerateFromPassword([]byte(req.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorEnvelope("could not store credentials"))
	}

	u, err := s.store.CreateUser(req.FullName, req.Email, credential)
	if err != nil {
		return c.JSON(http.StatusConflict, errorEnvelope("email already registered"))
	}

	token, err := s.issueToken(u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorEnvelope("could not issue token"))
	}
	c.Response().Header().Set("Authorization", "Bearer "+token)

	s.logger.Info().Int("id", u.ID).Str("email", u.Email).Msg("stub user registered")
	return c.JSON(http.StatusCreated, map[string]any{"data": userResource(u)})
}

func (s *Server) loginUser(c echo.Context) error {
	var req rest.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid payload"))
	}

	u, found := s.store.FindUserByEmail(req.Email)
	if !found {
		return c.JSON(http.StatusNotFound, errorEnvelope("user not found"))
	}
	if bcrypt.CompareHashAndPassword(u.Credential, []byte(req.PasswordHash)) != nil {
		return c.JSON(http.StatusUnauthorized, errorEnvelope("incorrect credentials"))
	}

	token, err := s.issueToken(u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorEnvelope("could not issue token"))
	}
	c.Response().Header().Set("Authorization", "Bearer "+token)

	return c.JSON(http.StatusOK, map[string]any{"data": userResource(u)})
}

func (s *Server) updateUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid user id"))
	}

	var req rest.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid payload"))
	}

	var credential []byte
	if req.PasswordHash != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorEnvelope("could not store credentials"))
		}
		credential = hashed
	}

	u, found := s.store.UpdateUser(id, req.FullName, req.Email, credential)
	if !found {
		return c.JSON(http.StatusNotFound, errorEnvelope("user not found"))
	}
	return c.JSON(http.StatusOK, map[string]any{"data": userResource(u)})
}

func (s *Server) deleteUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorEnvelope("invalid user id"))
	}

	if !s.store.DeleteUser(id) {
		return c.JSON(http.StatusNotFound, errorEnvelope("user not found"))
	}
	return c.JSON(http.StatusOK, map[string]any{"data": nil})
}
