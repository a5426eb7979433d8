package rest

import (
	"net/http"

	"readlog/di"
	"readlog/usecase/delete_account_usecase"

	"github.com/labstack/echo/v4"
)

func registerUserRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.DELETE("/user", handleDeleteAccount(container.DeleteAccountUsecase))
}

func handleDeleteAccount(usecase *delete_account_usecase.DeleteAccountUsecase) echo.HandlerFunc {
	return func(c echo.Context) error {
		warning, err := usecase.Execute(c.Request().Context())
		if err != nil {
			return HandleError(c, err, "DeleteAccount")
		}

		message := "account deleted"
		if warning != "" {
			message = warning
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: message})
	}
}
