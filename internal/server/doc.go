// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
Package server 提供 HTTP 服务器生命周期管理。

Manager 封装 net/http.Server，负责非阻塞启动、优雅关闭与异步错误传播。
CreatorStudio 用它分别运行主 HTTP 服务与 Prometheus 指标服务，
信号处理由 cmd/creatorstudio 统一负责。
*/
package server
