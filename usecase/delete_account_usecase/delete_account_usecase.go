package delete_account_usecase

import (
	"context"

	"readlog/domain"
	"readlog/port/auth_port"
	"readlog/port/user_data_port"
	"readlog/utils/logger"
)

// DeleteAccountUsecase removes everything the caller owns, then asks the
// identity provider to delete the identity. Data deletion is the hard
// requirement; a provider failure afterwards is reported as a warning rather
// than failing a request whose data is already gone.
type DeleteAccountUsecase struct {
	deleteUserDataGateway user_data_port.DeleteUserDataPort
	authGateway           auth_port.AuthPort
}

func NewDeleteAccountUsecase(
	deleteUserDataGateway user_data_port.DeleteUserDataPort,
	authGateway auth_port.AuthPort,
) *DeleteAccountUsecase {
	return &DeleteAccountUsecase{
		deleteUserDataGateway: deleteUserDataGateway,
		authGateway:           authGateway,
	}
}

// Execute returns a non-empty warning when data deletion succeeded but the
// identity provider could not be updated.
func (u *DeleteAccountUsecase) Execute(ctx context.Context) (string, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return "", err
	}

	if err := u.deleteUserDataGateway.Execute(ctx, user.UserID); err != nil {
		logger.SafeErrorContext(ctx, "account data deletion failed", "error", err)
		return "", err
	}

	if err := u.authGateway.DeleteIdentity(ctx, user.UserID); err != nil {
		logger.SafeWarnContext(ctx, "identity deletion failed after data removal", "error", err, "user_id", user.UserID)
		return "account data deleted; identity cleanup is still pending", nil
	}

	logger.SafeInfoContext(ctx, "account deleted", "user_id", user.UserID)
	return "", nil
}
