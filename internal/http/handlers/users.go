package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usersapi/internal/model"
	"usersapi/internal/ws"
)

type UsersHandler struct {
	db  *gorm.DB
	hub *ws.Hub
	log *zap.SugaredLogger
}

func NewUsersHandler(db *gorm.DB, hub *ws.Hub, log *zap.SugaredLogger) *UsersHandler {
	return &UsersHandler{db: db, hub: hub, log: log}
}

type UserIn struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Create godoc
// @Summary Create user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   body body UserIn true "user"
// @Success 201 {object} model.User
// @Failure 409 {object} map[string]string
// @Router  /users [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var in UserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	var exist model.User
	if err := h.db.Where("email = ?", in.Email).First(&exist).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Email already registered"})
		return
	}
	u := model.User{Name: in.Name, Email: in.Email}
	if err := h.db.Create(&u).Error; err != nil {
		h.log.Errorw("create user", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "create user failed"})
		return
	}
	c.JSON(http.StatusCreated, u)
	h.hub.BroadcastEvent("user_created", u)
}

// List godoc
// @Summary List users
// @Tags    users
// @Produce json
// @Param   limit  query int false "page size"   default(50)
// @Param   offset query int false "page offset" default(0)
// @Success 200 {array} model.User
// @Router  /users [get]
func (h *UsersHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	var rows []model.User
	if err := h.db.Order("id").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "list failed"})
		return
	}
	if rows == nil {
		rows = []model.User{}
	}
	c.JSON(http.StatusOK, rows)
}

// Get godoc
// @Summary Get user
// @Tags    users
// @Produce json
// @Param   id path int true "user id"
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Router  /users/{id} [get]
func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var u model.User
	if err := h.db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "get failed"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// Update godoc
// @Summary Update user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   id   path int    true "user id"
// @Param   body body UserIn true "user"
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router  /users/{id} [put]
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in UserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	var exist model.User
	if err := h.db.Where("email = ? AND id <> ?", in.Email, id).First(&exist).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Email already registered"})
		return
	}
	res := h.db.Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]any{"name": in.Name, "email": in.Email})
	if res.Error != nil {
		h.log.Errorw("update user", "id", id, "err", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "update failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
		return
	}
	u := model.User{ID: id, Name: in.Name, Email: in.Email}
	c.JSON(http.StatusOK, u)
	h.hub.BroadcastEvent("user_updated", u)
}

// Delete godoc
// @Summary Delete user
// @Tags    users
// @Param   id path int true "user id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router  /users/{id} [delete]
func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res := h.db.Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		h.log.Errorw("delete user", "id", id, "err", res.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "delete failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
		return
	}
	c.Status(http.StatusNoContent)
	h.hub.BroadcastEvent("user_deleted", gin.H{"id": id})
}

func pathID(c *gin.Context) (int32, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid ID: " + raw})
		return 0, false
	}
	return int32(id), true
}
