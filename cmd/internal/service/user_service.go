package service

import (
	"contractregistry/cmd/internal/contract"
	"contractregistry/cmd/internal/domain/entity"
	cognitoclient "contractregistry/cmd/internal/infrastructure/aws/cognito"
	"contractregistry/cmd/internal/utils"
	"contractregistry/cmd/internal/utils/apierror"
	"contractregistry/cmd/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindActiveBySub(sub string) (*entity.User, error)
	FindActiveByEmail(email string) (*entity.User, error)
	ExistsActiveByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type RoleRepository interface {
	FindByUser(userID int64) ([]entity.Role, error)
	Grant(userID int64, role entity.Role) error
}

type UserService struct {
	UserRepo UserRepository
	RoleRepo RoleRepository
	Validate *validator.Validate
	Cognito  cognitoclient.CognitoInterface
}

func NewUserService(userRepo UserRepository, roleRepo RoleRepository, validate *validator.Validate, cogClient cognitoclient.CognitoInterface) *UserService {
	return &UserService{
		UserRepo: userRepo,
		RoleRepo: roleRepo,
		Validate: validate,
		Cognito:  cogClient,
	}
}

// CreateUser registers the user on Cognito and mirrors it locally with the
// default "user" role. Every account starts without admin access; roles are
// granted directly on the database.
func (u *UserService) CreateUser(req *contract.CreateUserRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return apierror.InternalServerError
	}

	if found {
		return apierror.IDPExistingEmailError
	}

	cogUser := &cognitoclient.User{Email: req.Email, Password: req.Password}
	sub, apierr, revert := handleUserSignup(u.Cognito, cogUser)
	if apierr != nil {
		return apierr
	}

	now := utils.NowUTC()
	user := &entity.User{
		ID:            uid.Generate(),
		SubUUID:       sub,
		Username:      req.Username,
		Email:         req.Email,
		EmailVerified: false,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = u.UserRepo.Save(user); err != nil {
		revert()
		log.Errorf("failed to create user: %v", err)
		return apierror.InternalServerError
	}

	if err = u.RoleRepo.Grant(user.ID, entity.RoleUser); err != nil {
		// The account still works, it just carries no role rows.
		log.Errorf("failed to grant default role to user %d: %v", user.ID, err)
	}
	return nil
}

func (u *UserService) Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.IDPUserNotFoundError
	}

	if user.Suspended {
		return nil, apierror.NewForbiddenError("This account is suspended")
	}

	credentials := &cognitoclient.User{
		Email:    req.Email,
		Password: req.Password,
	}

	auth, err := u.Cognito.SignIn(credentials)
	if err != nil {
		return nil, utils.MapCognitoError(err)
	}
	return &contract.UserLoginResponse{AccessToken: auth.AccessToken, IDToken: auth.IDToken}, nil
}

func (u *UserService) ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return apierror.InternalServerError
	}

	if user == nil {
		return apierror.IDPUserNotFoundError
	}

	if user.EmailVerified {
		return apierror.UserAlreadyConfirmedError
	}

	confirms := &cognitoclient.UserConfirmation{
		Email: req.Email,
		Code:  req.Code,
	}

	if err = u.Cognito.ConfirmAccount(confirms); err != nil {
		return utils.MapCognitoError(err)
	}

	user.EmailVerified = true
	user.UpdatedAt = utils.NowUTC()
	if err = u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to update user (%d) verified status: %v", user.ID, err)
	}
	return nil
}

func (u *UserService) ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to find user (%s) by email: %v", req.Email, err)
		return apierror.InternalServerError
	}

	if user == nil {
		return apierror.IDPUserNotFoundError
	}

	if user.EmailVerified {
		return apierror.UserAlreadyConfirmedError
	}

	if err = u.Cognito.ResendConfirmation(req.Email); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

// GetSelf resolves the authenticated user with their granted roles.
func (u *UserService) GetSelf(actor *entity.User) (*contract.UserResponse, apierror.ErrorResponse) {
	roles, err := u.RoleRepo.FindByUser(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch roles of user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(actor, roles), nil
}

func (u *UserService) FetchBySub(sub string) (*entity.User, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindActiveBySub(sub)
	if err != nil {
		log.Errorf("failed to find user (%s) by sub: %v", sub, err)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

func handleUserSignup(cogClient cognitoclient.CognitoInterface, req *cognitoclient.User) (string, apierror.ErrorResponse, func()) {
	revert := func() {
		_ = cogClient.AdminDeleteUser(req.Email)
	}

	sub, err := cogClient.SignUp(req)
	if err != nil {
		return "", utils.MapCognitoError(err), revert
	}
	return sub, nil, revert
}

func toUserResponse(user *entity.User, roles []entity.Role) *contract.UserResponse {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}

	return &contract.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Roles:     names,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}
