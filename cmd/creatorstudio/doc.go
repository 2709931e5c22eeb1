// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
Package main 提供 CreatorStudio 服务端程序入口。

# 概述

cmd/creatorstudio 提供 serve、version、health、help 子命令。serve 加载
YAML 与环境变量配置，启动 HTTP 服务（JSON API、HTML 页面、健康检查）
与独立端口的 Prometheus 指标服务。

# 中间件链

Recovery、RequestID、OTelTracing、SecurityHeaders、RequestLogger、
MetricsMiddleware、CORS，配置了 API Key 或 JWT 时再追加 APIKeyAuth 与
JWTAuth，认证只作用于 /api/ 路由。

# 关闭

收到 SIGINT/SIGTERM 或任一服务器异常退出后依次关闭 HTTP 服务、
Metrics 服务、遥测 exporter 与 Redis 连接。

Version、BuildTime、GitCommit 通过 ldflags 注入。
*/
package main
