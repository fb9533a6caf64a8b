package plugin

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// openAPIVersion はChatGPTプラグインが受け付けるOpenAPIのバージョン。
const openAPIVersion = "3.0.1"

// openAPIDocument はOpenAPIドキュメントのうち、このプラグインで使う部分だけを表す。
type openAPIDocument struct {
	OpenAPI    string                     `yaml:"openapi"`
	Info       openAPIInfo                `yaml:"info"`
	Servers    []openAPIServer            `yaml:"servers"`
	Paths      map[string]openAPIPathItem `yaml:"paths"`
	Components openAPIComponents          `yaml:"components"`
}

type openAPIInfo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
}

type openAPIServer struct {
	URL string `yaml:"url"`
}

type openAPIPathItem struct {
	Get *openAPIOperation `yaml:"get,omitempty"`
}

type openAPIOperation struct {
	OperationID string                     `yaml:"operationId"`
	Summary     string                     `yaml:"summary"`
	Responses   map[string]openAPIResponse `yaml:"responses"`
}

type openAPIResponse struct {
	Description string                      `yaml:"description"`
	Content     map[string]openAPIMediaType `yaml:"content,omitempty"`
}

type openAPIMediaType struct {
	Schema openAPISchema `yaml:"schema"`
}

type openAPIComponents struct {
	Schemas map[string]openAPISchema `yaml:"schemas"`
}

// openAPISchema はJSON Schemaのサブセット。Refが設定されている場合は他のフィールドを出力しない。
type openAPISchema struct {
	Ref         string                   `yaml:"$ref,omitempty"`
	Type        string                   `yaml:"type,omitempty"`
	Description string                   `yaml:"description,omitempty"`
	Properties  map[string]openAPISchema `yaml:"properties,omitempty"`
	Items       *openAPISchema           `yaml:"items,omitempty"`
}

// newOpenAPIDocument はTODO APIを記述するOpenAPIドキュメントを組み立てる。
func newOpenAPIDocument(publicURL string) openAPIDocument {
	return openAPIDocument{
		OpenAPI: openAPIVersion,
		Info: openAPIInfo{
			Title:       "TODO Plugin",
			Description: "A plugin that allows the user to list their TODO items using ChatGPT.",
			Version:     "v1",
		},
		Servers: []openAPIServer{{URL: publicURL}},
		Paths: map[string]openAPIPathItem{
			todosPath: {
				Get: &openAPIOperation{
					OperationID: "getTodos",
					Summary:     "Get the list of todos",
					Responses: map[string]openAPIResponse{
						"200": {
							Description: "OK",
							Content: map[string]openAPIMediaType{
								"application/json": {
									Schema: openAPISchema{Ref: "#/components/schemas/getTodosResponse"},
								},
							},
						},
					},
				},
			},
		},
		Components: openAPIComponents{
			Schemas: map[string]openAPISchema{
				"getTodosResponse": {
					Type: "object",
					Properties: map[string]openAPISchema{
						"todos": {
							Type:        "array",
							Description: "The list of todos.",
							Items:       &openAPISchema{Type: "string"},
						},
					},
				},
			},
		},
	}
}

// renderOpenAPI はOpenAPIドキュメントをYAMLにシリアライズする。
// yaml.v3はマップのキーをソートして出力するため、同じ入力からは常に同じバイト列になる。
func renderOpenAPI(publicURL string) ([]byte, error) {
	out, err := yaml.Marshal(newOpenAPIDocument(publicURL))
	if err != nil {
		return nil, fmt.Errorf("OpenAPIドキュメントのシリアライズに失敗: %w", err)
	}
	return out, nil
}
