package cognitoclient

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// User is the default user struct for all basic Cognito operations.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserConfirmation is the default structure for approving e-mail verification.
type UserConfirmation struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// AuthCreate represents the response of Cognito sign in approval.
type AuthCreate struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
}

type CognitoInterface interface {
	SignUp(user *User) (string, error)
	SignIn(user *User) (*AuthCreate, error)
	ConfirmAccount(user *UserConfirmation) error
	ResendConfirmation(email string) error
	AdminDeleteUser(email string) error
}

type cognitoClient struct {
	client      *cognito.Client
	appClientId string
	userPoolId  string
}

func InitCognitoClient() (CognitoInterface, error) {
	region := os.Getenv("AWS_COGNITO_REGION")
	appClientId := os.Getenv("AWS_COGNITO_CLIENT_ID")
	userPoolId := os.Getenv("AWS_COGNITO_USER_POOL_ID")

	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &cognitoClient{
		client:      cognito.NewFromConfig(cfg),
		appClientId: appClientId,
		userPoolId:  userPoolId,
	}, nil
}

// SignUp creates a new user row on Cognito and returns its "sub" (the UUID)
func (c *cognitoClient) SignUp(user *User) (string, error) {
	input := &cognito.SignUpInput{
		ClientId: aws.String(c.appClientId),
		Username: aws.String(user.Email),
		Password: aws.String(user.Password),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(user.Email),
			},
		},
	}

	out, err := c.client.SignUp(context.Background(), input)
	if err != nil {
		return "", err
	}
	return *out.UserSub, nil
}

func (c *cognitoClient) SignIn(user *User) (*AuthCreate, error) {
	input := &cognito.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.appClientId),
		AuthParameters: map[string]string{
			"USERNAME": user.Email,
			"PASSWORD": user.Password,
		},
	}

	out, err := c.client.InitiateAuth(context.Background(), input)
	if err != nil {
		return nil, err
	}

	result := out.AuthenticationResult
	return &AuthCreate{
		IDToken:     aws.ToString(result.IdToken),
		AccessToken: aws.ToString(result.AccessToken),
	}, nil
}

// ConfirmAccount is used to verify the user's e-mail address
func (c *cognitoClient) ConfirmAccount(user *UserConfirmation) error {
	input := &cognito.ConfirmSignUpInput{
		Username:         aws.String(user.Email),
		ConfirmationCode: aws.String(user.Code),
		ClientId:         aws.String(c.appClientId),
	}

	_, err := c.client.ConfirmSignUp(context.Background(), input)
	return err
}

// ResendConfirmation resends the verification code to the provided e-mail
func (c *cognitoClient) ResendConfirmation(email string) error {
	input := &cognito.ResendConfirmationCodeInput{
		Username: aws.String(email),
		ClientId: aws.String(c.appClientId),
	}

	_, err := c.client.ResendConfirmationCode(context.Background(), input)
	return err
}

// AdminDeleteUser removes the user from the pool. Used to revert a signup
// when the local row cannot be created.
func (c *cognitoClient) AdminDeleteUser(email string) error {
	input := &cognito.AdminDeleteUserInput{
		UserPoolId: aws.String(c.userPoolId),
		Username:   aws.String(email),
	}

	_, err := c.client.AdminDeleteUser(context.Background(), input)
	return err
}
