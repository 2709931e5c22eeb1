package studio

import "github.com/BaSui01/creatorstudio/llm/structured"

// 响应 schema 与 types 包中结构体的 JSON 字段一一对应。
// 每次调用返回新实例，调用方可以自由修改。

// IdeasSchema ARRAY<OBJECT{title, description, viralScore, targetAudience}>
func IdeasSchema() *structured.JSONSchema {
	item := structured.NewObjectSchema().
		AddProperty("title", structured.NewStringSchema()).
		AddProperty("description", structured.NewStringSchema()).
		AddProperty("viralScore", structured.NewNumberSchema().
			WithDescription("A score from 1-100 indicating potential virality")).
		AddProperty("targetAudience", structured.NewStringSchema()).
		AddRequired("title", "description", "viralScore", "targetAudience")
	return structured.NewArraySchema(item)
}

// ScriptSchema ARRAY<OBJECT{heading, content, visualCue}>
func ScriptSchema() *structured.JSONSchema {
	item := structured.NewObjectSchema().
		AddProperty("heading", structured.NewStringSchema().
			WithDescription("Section header like Intro, Point 1, etc.")).
		AddProperty("content", structured.NewStringSchema().
			WithDescription("The spoken script for this section")).
		AddProperty("visualCue", structured.NewStringSchema().
			WithDescription("Instructions for b-roll or graphics")).
		AddRequired("heading", "content", "visualCue")
	return structured.NewArraySchema(item)
}

// MetadataSchema OBJECT{titles[], description, tags[]}
func MetadataSchema() *structured.JSONSchema {
	return structured.NewObjectSchema().
		AddProperty("titles", structured.NewArraySchema(structured.NewStringSchema())).
		AddProperty("description", structured.NewStringSchema()).
		AddProperty("tags", structured.NewArraySchema(structured.NewStringSchema())).
		AddRequired("titles", "description", "tags")
}
