package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"quizdesk/internal/container"
	"quizdesk/internal/router"
)

func main() {
	c := container.New()
	handler := router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		AttemptHandler: c.AttemptContainer.Handler,
		ReportHandler:  c.ReportContainer.Handler,
	})

	lambda.Start(httpadapter.NewV2(handler).ProxyWithContext)
}
