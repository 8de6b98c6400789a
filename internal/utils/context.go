package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/worknow-dev/worknow/internal/middleware"
	"github.com/worknow-dev/worknow/internal/types"
)

func GetCurrentAccount(ctx *gin.Context) (middleware.AuthenticatedAccount, error) {
	account, exists := ctx.Get(types.ContextAccountKey)

	if !exists {
		return middleware.AuthenticatedAccount{}, fmt.Errorf("account not authenticated")
	}

	authenticatedAccount, ok := account.(middleware.AuthenticatedAccount)

	if !ok {
		return middleware.AuthenticatedAccount{}, fmt.Errorf("invalid account type in context")
	}

	return authenticatedAccount, nil
}

func GetCurrentAccountID(ctx *gin.Context) (uint, error) {
	account, err := GetCurrentAccount(ctx)

	if err != nil {
		return 0, err
	}

	return account.ID, nil
}
