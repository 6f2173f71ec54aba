package controllers

import (
	"errors"
	"net/http"

	"blogicum/models"
	"blogicum/services"
	"blogicum/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionMaxAge = 24 * 60 * 60

type AuthController struct {
	db          *gorm.DB
	userService *services.UserService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		db:          db,
		userService: services.NewUserService(db),
	}
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (ac *AuthController) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", gin.H{"error": err.Error()})
		return
	}

	if _, err := ac.userService.CreateUser(&form); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.HTML(http.StatusConflict, "register.html", gin.H{
				"error": "A user with this username or email already exists",
			})
		} else {
			serverError(c)
		}
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": err.Error()})
		return
	}

	user, err := ac.userService.GetUserByUsername(form.Username)
	if err != nil || !user.CheckPassword(form.Password) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"error": "Invalid username or password",
		})
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		serverError(c)
		return
	}

	c.SetCookie(utils.SessionCookie, token, sessionMaxAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
