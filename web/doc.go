// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
Package web 提供服务端渲染的 CreatorStudio 页面。

侧边栏导航四个视图：Dashboard、Ideas、Scripts、SEO。生成类页面通过
POST 表单提交，空白输入只回显表单而不调用模型；生成失败时页面展示
通用提示，详细错误只写入日志。模板与样式表通过 embed 打包进二进制。
*/
package web
