// Package docs 提供 /swagger 使用的 OpenAPI 文档，内容对应 api 包 handler 上的 swag 注释。
// 修改接口注释后执行 swag init -g main.go 重新生成本文件。
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
        "/api/v1/accounts": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "账户信息",
                        "schema": {
                            "$ref": "#/definitions/api.CreateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "创建成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Account"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "校验失败",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ValidationErrors"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "创建账户",
                "description": "创建银行账户或钱包，当前余额初始化为期初余额",
                "tags": [
                    "账户"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "is_active",
                        "in": "query",
                        "required": false,
                        "description": "按启用状态筛选",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Account"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "获取账户列表",
                "tags": [
                    "账户"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/accounts/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "账户ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Account"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "账户不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "获取账户详情",
                "tags": [
                    "账户"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "账户ID",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "更新内容",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateAccountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "更新成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Account"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "校验失败",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ValidationErrors"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "账户不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "更新账户",
                "description": "修改名称、银行、类型或启用状态；停用的账户不能再记账",
                "tags": [
                    "账户"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "账户ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "删除成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "账户不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "409": {
                        "description": "存在关联交易",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "删除账户",
                "description": "账户下存在收支记录时禁止删除（返回 409）",
                "tags": [
                    "账户"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/accounts/{id}/audit": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "账户ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "核对结果",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.BalanceAudit"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "账户不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "核对账户余额",
                "description": "用期初余额加全部收支重新计算余额，返回与存储余额的偏差",
                "tags": [
                    "账户"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/accounts/{id}/repair": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "账户ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "修复结果",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.BalanceAudit"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "账户不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "修复账户余额",
                "description": "存储余额与重新计算的余额不一致时，以重新计算的值为准",
                "tags": [
                    "账户"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/auth/account": {
            "delete": {
                "responses": {
                    "200": {
                        "description": "注销成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "409": {
                        "description": "存在关联交易",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "注销用户",
                "description": "删除当前用户及其账户、类别、个人资料；存在收支记录时禁止删除（返回 409）",
                "tags": [
                    "认证"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "登录信息",
                        "schema": {
                            "$ref": "#/definitions/api.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "登录成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.LoginResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "401": {
                        "description": "用户名或密码错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "403": {
                        "description": "账号已锁定",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "用户登录",
                "description": "用户登录获取 JWT token",
                "tags": [
                    "认证"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/v1/auth/password": {
            "put": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "密码信息",
                        "schema": {
                            "$ref": "#/definitions/api.ChangePasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "修改成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "401": {
                        "description": "原密码错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "修改密码",
                "description": "修改当前用户密码",
                "tags": [
                    "认证"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/auth/profile": {
            "get": {
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "未授权",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "获取当前用户信息",
                "description": "获取当前登录用户及其个人资料",
                "tags": [
                    "认证"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "个人资料",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "修改成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ValidationErrors"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "修改个人资料",
                "description": "修改全名、电话和邮箱",
                "tags": [
                    "认证"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/auth/register": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "注册信息",
                        "schema": {
                            "$ref": "#/definitions/api.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "注册成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "请求参数错误",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ValidationErrors"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "服务器错误",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "用户注册",
                "description": "创建用户、个人资料和默认收支类别；配置了邮件服务时发送欢迎邮件",
                "tags": [
                    "认证"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/api/v1/categories": {
            "get": {
                "parameters": [
                    {
                        "name": "category_type",
                        "in": "query",
                        "required": false,
                        "description": "类型 income/expense",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Category"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "获取类别列表",
                "tags": [
                    "类别"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "类别信息",
                        "schema": {
                            "$ref": "#/definitions/api.CategoryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "创建成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Category"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "校验失败或名称已存在",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ValidationErrors"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "创建类别",
                "description": "名称在当前用户下唯一，颜色格式 #RRGGBB",
                "tags": [
                    "类别"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/categories/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "类别ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Category"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "类别不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "获取类别详情",
                "tags": [
                    "类别"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "类别ID",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "类别信息",
                        "schema": {
                            "$ref": "#/definitions/api.CategoryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "更新成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Category"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "校验失败",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ValidationErrors"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "类别不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "更新类别",
                "description": "已有收支记录的类别不能修改类型",
                "tags": [
                    "类别"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "类别ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "删除成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "类别不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "409": {
                        "description": "存在关联交易",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "删除类别",
                "description": "类别下存在收支记录时禁止删除（返回 409）",
                "tags": [
                    "类别"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.Dashboard"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "未授权",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "首页汇总",
                "description": "总余额、启用账户数、本月收入/支出/结余、最近收支记录、本月按类别统计",
                "tags": [
                    "首页"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/transactions": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "收支记录信息",
                        "schema": {
                            "$ref": "#/definitions/api.CreateTransactionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "创建成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Transaction"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "校验失败",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ValidationErrors"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "未授权",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "创建收支记录",
                "description": "创建收入或支出；支出金额不能超过账户余额，余额随记录同步调整",
                "tags": [
                    "收支记录"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "页码",
                        "type": "integer",
                        "default": 1
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "每页数量",
                        "type": "integer",
                        "default": 20
                    },
                    {
                        "name": "account_id",
                        "in": "query",
                        "required": false,
                        "description": "账户ID",
                        "type": "integer"
                    },
                    {
                        "name": "category_id",
                        "in": "query",
                        "required": false,
                        "description": "类别ID",
                        "type": "integer"
                    },
                    {
                        "name": "transaction_type",
                        "in": "query",
                        "required": false,
                        "description": "类型 income/expense",
                        "type": "string"
                    },
                    {
                        "name": "date_from",
                        "in": "query",
                        "required": false,
                        "description": "开始日期 (2024-01-01)",
                        "type": "string"
                    },
                    {
                        "name": "date_to",
                        "in": "query",
                        "required": false,
                        "description": "结束日期 (2024-12-31)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.TransactionPage"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "未授权",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "获取收支记录列表",
                "description": "分页查询当前用户的收支记录，并返回筛选范围内的收入、支出合计与结余",
                "tags": [
                    "收支记录"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/transactions/export": {
            "get": {
                "parameters": [
                    {
                        "name": "account_id",
                        "in": "query",
                        "required": false,
                        "description": "账户ID",
                        "type": "integer"
                    },
                    {
                        "name": "category_id",
                        "in": "query",
                        "required": false,
                        "description": "类别ID",
                        "type": "integer"
                    },
                    {
                        "name": "transaction_type",
                        "in": "query",
                        "required": false,
                        "description": "类型 income/expense",
                        "type": "string"
                    },
                    {
                        "name": "date_from",
                        "in": "query",
                        "required": false,
                        "description": "开始日期 (2024-01-01)",
                        "type": "string"
                    },
                    {
                        "name": "date_to",
                        "in": "query",
                        "required": false,
                        "description": "结束日期 (2024-12-31)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "xlsx 文件",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "401": {
                        "description": "未授权",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "导出收支流水",
                "description": "按列表筛选条件导出 xlsx 流水（最多 10000 条）",
                "tags": [
                    "收支记录"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/v1/transactions/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "记录ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "获取成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Transaction"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "记录不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "获取单条收支记录",
                "tags": [
                    "收支记录"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "记录ID",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "更新内容",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateTransactionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "更新成功",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Transaction"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "校验失败",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ValidationErrors"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "记录不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "更新收支记录",
                "description": "修改金额、类型、日期、账户或类别；先撤销原记录对账户余额的影响，再施加新的影响",
                "tags": [
                    "收支记录"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "记录ID",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "删除成功",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "记录不存在",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                },
                "summary": "删除收支记录",
                "description": "删除记录并撤销其对账户余额的影响",
                "tags": [
                    "收支记录"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "api.CategoryRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Mercado"
                },
                "category_type": {
                    "type": "string",
                    "example": "expense"
                },
                "color": {
                    "type": "string",
                    "example": "#ef4444"
                }
            },
            "required": [
                "name",
                "category_type"
            ]
        },
        "api.ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "old_password": {
                    "type": "string",
                    "example": "oldpassword123"
                },
                "new_password": {
                    "type": "string",
                    "example": "newpassword123"
                }
            },
            "required": [
                "old_password",
                "new_password"
            ]
        },
        "api.CreateAccountRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Conta corrente"
                },
                "bank_name": {
                    "type": "string",
                    "example": "Itaú"
                },
                "account_type": {
                    "type": "string",
                    "example": "checking"
                },
                "opening_balance": {
                    "type": "string",
                    "example": "1500.00"
                },
                "is_active": {
                    "type": "boolean",
                    "example": true
                }
            },
            "required": [
                "name"
            ]
        },
        "api.CreateTransactionRequest": {
            "type": "object",
            "properties": {
                "account_id": {
                    "type": "integer",
                    "example": 1
                },
                "category_id": {
                    "type": "integer",
                    "example": 3
                },
                "transaction_type": {
                    "type": "string",
                    "example": "expense"
                },
                "amount": {
                    "type": "string",
                    "example": "99.90"
                },
                "transaction_date": {
                    "type": "string",
                    "example": "2024-06-01"
                },
                "description": {
                    "type": "string",
                    "example": "超市购物"
                }
            },
            "required": [
                "account_id",
                "category_id",
                "transaction_type",
                "amount",
                "transaction_date"
            ]
        },
        "api.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string",
                    "example": "maria",
                    "description": "可为用户名或邮箱"
                },
                "password": {
                    "type": "string",
                    "example": "password123"
                }
            },
            "required": [
                "username",
                "password"
            ]
        },
        "api.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user_info": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "api.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string",
                    "example": "maria"
                },
                "password": {
                    "type": "string",
                    "example": "password123"
                },
                "email": {
                    "type": "string",
                    "example": "maria@example.com"
                },
                "full_name": {
                    "type": "string",
                    "example": "Maria Silva"
                }
            },
            "required": [
                "username",
                "password"
            ]
        },
        "api.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "api.UpdateAccountRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Poupança"
                },
                "bank_name": {
                    "type": "string",
                    "example": "Nubank"
                },
                "account_type": {
                    "type": "string",
                    "example": "savings"
                },
                "is_active": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "api.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "full_name": {
                    "type": "string",
                    "example": "Maria Silva"
                },
                "phone": {
                    "type": "string",
                    "example": "+55 11 99999-0000"
                },
                "email": {
                    "type": "string",
                    "example": "maria@example.com"
                }
            }
        },
        "api.UpdateTransactionRequest": {
            "type": "object",
            "properties": {
                "account_id": {
                    "type": "integer",
                    "example": 1
                },
                "category_id": {
                    "type": "integer",
                    "example": 3
                },
                "transaction_type": {
                    "type": "string",
                    "example": "expense"
                },
                "amount": {
                    "type": "string",
                    "example": "99.90"
                },
                "transaction_date": {
                    "type": "string",
                    "example": "2024-06-01"
                },
                "description": {
                    "type": "string",
                    "example": "超市购物"
                }
            }
        },
        "api.ValidationErrors": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.FieldError"
                    }
                }
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "bank_name": {
                    "type": "string"
                },
                "account_type": {
                    "type": "string"
                },
                "opening_balance": {
                    "type": "string"
                },
                "balance": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "category_type": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "full_name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "account_id": {
                    "type": "integer"
                },
                "category_id": {
                    "type": "integer"
                },
                "transaction_type": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "transaction_date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "account": {
                    "$ref": "#/definitions/models.Account"
                },
                "category": {
                    "$ref": "#/definitions/models.Category"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "description": "用户状态：locked/active"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "profile": {
                    "$ref": "#/definitions/models.Profile"
                }
            }
        },
        "service.BalanceAudit": {
            "type": "object",
            "properties": {
                "account_id": {
                    "type": "integer"
                },
                "stored": {
                    "type": "string"
                },
                "expected": {
                    "type": "string"
                },
                "drift": {
                    "type": "string"
                },
                "repaired": {
                    "type": "boolean"
                }
            }
        },
        "service.CategoryTotal": {
            "type": "object",
            "properties": {
                "category_id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                },
                "formatted": {
                    "type": "string"
                }
            }
        },
        "service.Dashboard": {
            "type": "object",
            "properties": {
                "current_month": {
                    "type": "string",
                    "description": "2024-06"
                },
                "total_balance": {
                    "type": "string"
                },
                "active_accounts": {
                    "type": "integer"
                },
                "month_income": {
                    "type": "string"
                },
                "month_expense": {
                    "type": "string"
                },
                "month_balance": {
                    "type": "string"
                },
                "formatted": {
                    "type": "object"
                },
                "recent_transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "income_by_category": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.CategoryTotal"
                    }
                },
                "expenses_by_category": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.CategoryTotal"
                    }
                }
            }
        },
        "service.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "service.TransactionPage": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Transaction"
                    }
                },
                "total_income": {
                    "type": "string"
                },
                "total_expense": {
                    "type": "string"
                },
                "balance": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "个人记账系统 API",
	Description:      "账户、收支类别与交易记录管理，交易写入时同步维护账户余额",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
