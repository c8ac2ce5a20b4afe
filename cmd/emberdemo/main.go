// Command emberdemo is a small, self-contained server exercising
// ember's request reader, router, and response builder. Grounded on
// main.cpp's illustrative route registrations, translated from
// lambda-per-route closures to Go handler funcs.
package main

import (
	"fmt"
	"log"

	"github.com/yourusername/ember/pkg/ember/rest"
	"github.com/yourusername/ember/pkg/ember/routing"
	"github.com/yourusername/ember/pkg/ember/server"
	"github.com/yourusername/ember/pkg/ember/wire"
)

func main() {
	router := routing.NewRouter()

	routes := []struct {
		method  wire.Method
		path    string
		handler rest.Handler
	}{
		{wire.MethodGET, "/", handleIndex},
		{wire.MethodPOST, "/submit-data", handleSubmitData},
		{wire.MethodPOST, "/test-chunked", handleTestChunked},
		{wire.MethodGET, "/user/{id:int}", handleUser},
		{wire.MethodGET, "/api/users", handleListUsers},
	}
	for _, r := range routes {
		if err := router.Handle(r.method, r.path, r.handler); err != nil {
			log.Fatalf("ember: registering %s %s: %v", r.method, r.path, err)
		}
	}

	cfg := server.DefaultConfig()
	srv := server.New(cfg, router)

	log.Printf("listening on %s:%d", cfg.Host, cfg.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("ember: %v", err)
	}
}

func handleIndex(ctx *rest.Context) rest.Result {
	name := ctx.Request.QueryParams().GetDefault("name", "World")
	return rest.Ok(fmt.Sprintf("Hello, %s!", name))
}

func handleSubmitData(ctx *rest.Context) rest.Result {
	var name, email string

	if contentType, _ := ctx.Request.Header.Get("Content-Type"); contentType == "application/json" {
		body, _ := ctx.Request.JSON()
		if fields, ok := body.(map[string]any); ok {
			name, _ = fields["name"].(string)
			email, _ = fields["email"].(string)
		}
	} else {
		if err := ctx.Request.ParseForm(); err != nil {
			return rest.BadRequest("malformed form body")
		}
		name, _ = ctx.Request.FormValue("name")
		email, _ = ctx.Request.FormValue("email")
	}

	if email == "" {
		return rest.BadRequest("Email is required")
	}
	return rest.Ok(fmt.Sprintf("Name: %s, Email: %s", name, email))
}

func handleTestChunked(ctx *rest.Context) rest.Result {
	return rest.Ok(string(ctx.Request.Body))
}

func handleUser(ctx *rest.Context) rest.Result {
	id, err := ctx.Vars.GetInt("id")
	if err != nil {
		return rest.NotFound("Not Found\n")
	}
	return rest.Ok(fmt.Sprintf("User %d", id))
}

type userRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func handleListUsers(ctx *rest.Context) rest.Result {
	return rest.JSON(200, []userRecord{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	})
}
