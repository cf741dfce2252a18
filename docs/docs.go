// Package docs registers the Swagger description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {
            "get": {"produces": ["text/html"], "tags": ["auth"], "summary": "Login form", "responses": {"200": {"description": "form"}}},
            "post": {
                "consumes": ["application/x-www-form-urlencoded"], "produces": ["text/html"], "tags": ["auth"],
                "summary": "Log in and start a session",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}, "401": {"description": "invalid credentials"}, "422": {"description": "validation errors"}}
            }
        },
        "/logout": {
            "get": {"tags": ["auth"], "summary": "End the session", "responses": {"303": {"description": "See Other"}}}
        },
        "/users": {
            "get": {"produces": ["text/html"], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "users page"}}},
            "post": {
                "consumes": ["application/x-www-form-urlencoded"], "produces": ["text/html"], "tags": ["users"],
                "summary": "Register a user",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "First name", "name": "first_name", "in": "formData"},
                    {"type": "string", "description": "Last name", "name": "last_name", "in": "formData"},
                    {"type": "string", "description": "Picture URL", "name": "picture_url", "in": "formData"}
                ],
                "responses": {"303": {"description": "See Other"}, "409": {"description": "username taken"}, "422": {"description": "validation errors"}}
            }
        },
        "/users/new": {
            "get": {"produces": ["text/html"], "tags": ["users"], "summary": "Sign-up form", "responses": {"200": {"description": "form"}}}
        },
        "/users/{id}": {
            "get": {
                "produces": ["text/html"], "tags": ["users"], "summary": "Show a user",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "profile page"}, "404": {"description": "not found"}}
            },
            "patch": {
                "consumes": ["application/x-www-form-urlencoded"], "produces": ["text/html"], "tags": ["users"],
                "summary": "Update supplied profile fields (owner only)",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "First name", "name": "first_name", "in": "formData"},
                    {"type": "string", "description": "Last name", "name": "last_name", "in": "formData"},
                    {"type": "string", "description": "Picture URL", "name": "picture_url", "in": "formData"}
                ],
                "responses": {"200": {"description": "profile page"}, "403": {"description": "forbidden"}, "404": {"description": "not found"}}
            }
        },
        "/users/{id}/edit": {
            "get": {
                "produces": ["text/html"], "tags": ["users"], "summary": "Profile edit form (owner only)",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "form"}, "403": {"description": "forbidden"}, "404": {"description": "not found"}}
            }
        },
        "/users/{id}/messages": {
            "get": {
                "produces": ["text/html"], "tags": ["messages"], "summary": "List a user's messages",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "messages page"}, "404": {"description": "not found"}}
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"], "produces": ["text/html"], "tags": ["messages"],
                "summary": "Post a message",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Display name", "name": "author", "in": "formData", "required": true},
                    {"type": "string", "description": "Message, at most 60 characters", "name": "content", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}, "404": {"description": "not found"}, "422": {"description": "validation errors"}}
            }
        },
        "/users/{id}/messages/new": {
            "get": {
                "produces": ["text/html"], "tags": ["messages"], "summary": "New message form",
                "parameters": [{"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "form"}, "404": {"description": "not found"}}
            }
        },
        "/users/{id}/messages/{message_id}": {
            "delete": {
                "tags": ["messages"], "summary": "Delete a message",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Message ID", "name": "message_id", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}, "404": {"description": "not found"}}
            }
        },
        "/users/{id}/messages/{message_id}/tags": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"], "tags": ["tags"], "summary": "Tag a message",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Message ID", "name": "message_id", "in": "path", "required": true},
                    {"type": "string", "description": "Tag name", "name": "name", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}, "404": {"description": "not found"}}
            }
        },
        "/users/{id}/messages/{message_id}/tags/{tag_id}": {
            "delete": {
                "tags": ["tags"], "summary": "Remove a tag from a message",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Message ID", "name": "message_id", "in": "path", "required": true},
                    {"type": "integer", "description": "Tag ID", "name": "tag_id", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "See Other"}, "404": {"description": "not found"}}
            }
        },
        "/tags": {
            "get": {"produces": ["text/html"], "tags": ["tags"], "summary": "List tags", "responses": {"200": {"description": "tags page"}}},
            "post": {
                "consumes": ["application/x-www-form-urlencoded"], "produces": ["text/html"], "tags": ["tags"],
                "summary": "Create a tag",
                "parameters": [{"type": "string", "description": "Tag name", "name": "name", "in": "formData", "required": true}],
                "responses": {"303": {"description": "See Other"}, "409": {"description": "name taken"}, "422": {"description": "validation errors"}}
            }
        },
        "/tags/{id}": {
            "delete": {
                "tags": ["tags"], "summary": "Delete a tag and its message associations",
                "parameters": [{"type": "integer", "description": "Tag ID", "name": "id", "in": "path", "required": true}],
                "responses": {"303": {"description": "See Other"}, "404": {"description": "not found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Message Board",
	Description:      "Users, their messages and tags, with session login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
