package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"

	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/container"
	"github.com/musicjoeyoung/Code-Explainer-Tutor/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		RepoHandler:        c.RepoContainer.Handler,
		ExplanationHandler: c.ExplanationContainer.Handler,
		QuizHandler:        c.QuizContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
