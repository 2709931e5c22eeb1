// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
Package handlers 提供 CreatorStudio HTTP API 的请求处理器实现。

# 核心类型

  - StudioHandler   ：创意、脚本、SEO 元数据三个生成端点
  - DashboardHandler：频道概览与导航项
  - HealthHandler   ：存活、就绪（并发检查）与版本信息
  - Response        ：统一 JSON 信封（success + data + error + timestamp + request_id）
  - ResponseWriter  ：包装 http.ResponseWriter 以捕获状态码与字节数

# 请求校验

生成端点只接受 POST（其余方法 405），Content-Type 必须为 application/json，
请求体上限 1 MB 且拒绝未知字段。服务层返回的 *types.Error 按其 HTTPStatus
写出，未设置时按错误码映射。
*/
package handlers
