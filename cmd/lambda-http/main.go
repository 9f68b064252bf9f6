package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"energy-optimizer/internal/bootstrap"
	"energy-optimizer/internal/shared/config"
	"energy-optimizer/internal/shared/server/respond"
	"energy-optimizer/internal/shared/telemetry"
)

// gateway builds the router once per container and proxies API Gateway
// events into it.
type gateway struct {
	once  sync.Once
	err   error
	proxy *ginadapter.GinLambdaV2
}

func (g *gateway) init() {
	app, err := bootstrap.Build(config.Load())
	if err != nil {
		g.err = err
		return
	}
	g.proxy = ginadapter.NewV2(app.Router)
}

func (g *gateway) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	g.once.Do(g.init)
	if g.err != nil || g.proxy == nil {
		telemetry.Error("lambda.bootstrap_failed", map[string]any{
			"request_id": req.RequestContext.RequestID,
			"route_key":  req.RouteKey,
			"error":      g.err,
		})
		return internalError(), nil
	}
	return g.proxy.ProxyWithContext(ctx, req)
}

// internalError mirrors the router's generic 500 body.
func internalError() events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(respond.ErrorResponse{Error: respond.InternalErrorMessage})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func main() {
	gw := &gateway{}
	lambda.Start(gw.handle)
}
