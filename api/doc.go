// Package api 定义 CreatorStudio HTTP JSON API 的请求与响应结构。
//
// # 端点
//
//	POST /api/v1/ideas      {"niche": "..."}        -> {"ideas": [...]}
//	POST /api/v1/scripts    {"title": "..."}        -> {"sections": [...], "markdown": "..."}
//	POST /api/v1/metadata   {"description": "..."}  -> {"metadata": {...} | null}
//	GET  /api/v1/dashboard                          -> 频道概览
//	GET  /api/v1/views                              -> 导航项
//
// 所有响应都包在统一信封中：
//
//	{"success": true, "data": ..., "timestamp": "...", "request_id": "..."}
//	{"success": false, "error": {"code": "...", "message": "...", "retryable": false}, ...}
//
// # 认证
//
// 配置了 server.api_keys 时，/api/ 路由需要 X-API-Key 头；
// 配置了 server.jwt 时，需要 Authorization: Bearer <token>。
package api
