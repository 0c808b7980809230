// Package docs holds the OpenAPI document served at /swagger/index.html.
// Regenerate with: swag init -g cmd/api/main.go -o internal/docs
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
        "/accounts": {
            "get": {
                "description": "GetUserAccounts returns the caller's accounts, provisioning main and stash on first access.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "List accounts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/accounts/top-up": {
            "post": {
                "description": "TopUpStash moves money from main to stash.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Top up stash",
                "parameters": [
                    {
                        "description": "Amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.StashRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.TransferResult"
                        }
                    },
                    "400": {
                        "description": "Invalid input or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/accounts/transfer": {
            "post": {
                "description": "Transfer moves money between two of the caller's accounts in one unit of work.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Transfer between accounts",
                "parameters": [
                    {
                        "description": "Transfer details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.TransferRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.TransferResult"
                        }
                    },
                    "400": {
                        "description": "Invalid input or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/accounts/withdraw": {
            "post": {
                "description": "WithdrawStash moves money from stash back to main.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Withdraw from stash",
                "parameters": [
                    {
                        "description": "Amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.StashRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.TransferResult"
                        }
                    },
                    "400": {
                        "description": "Invalid input or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/accounts/{type}": {
            "get": {
                "description": "GetAccount returns one account by type.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Get account",
                "parameters": [
                    {
                        "description": "Account type (main, stash)",
                        "name": "type",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Account"
                        }
                    },
                    "400": {
                        "description": "Invalid account type",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/accounts/{type}/balance": {
            "patch": {
                "description": "UpdateBalance adds to or subtracts from one account and logs the entry.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "accounts"
                ],
                "summary": "Update account balance",
                "parameters": [
                    {
                        "description": "Account type (main, stash)",
                        "name": "type",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Balance change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdateBalanceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.MutationResult"
                        }
                    },
                    "400": {
                        "description": "Invalid input or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bills": {
            "post": {
                "description": "CreateBill handles the creation of a new bill.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "Create a bill",
                "parameters": [
                    {
                        "description": "Bill details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateBillRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Bill"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "GetUserBills lists the caller's bills by due date.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "List bills",
                "parameters": [
                    {
                        "description": "Filter by status (pending, paid)",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/bills/{id}": {
            "get": {
                "description": "GetBillByID returns one of the caller's bills.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "Get a bill",
                "parameters": [
                    {
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Bill"
                        }
                    },
                    "404": {
                        "description": "Bill not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bills/{id}/pay": {
            "post": {
                "description": "PayBill pays a pending bill from the main account.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bills"
                ],
                "summary": "Pay a bill",
                "parameters": [
                    {
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.PayBillResult"
                        }
                    },
                    "400": {
                        "description": "Already paid or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Bill not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/circles": {
            "post": {
                "description": "CreateCircle handles the creation of a circle; the caller becomes its first member.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "circles"
                ],
                "summary": "Create a circle",
                "parameters": [
                    {
                        "description": "Circle details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateCircleRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Circle"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "GetCircles lists circles.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "circles"
                ],
                "summary": "List circles",
                "parameters": [
                    {
                        "description": "all, mine or public (default all)",
                        "name": "filter",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/circles/{id}": {
            "get": {
                "description": "GetCircleByID returns a circle with its active members.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "circles"
                ],
                "summary": "Get a circle",
                "parameters": [
                    {
                        "description": "Circle ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Circle"
                        }
                    },
                    "404": {
                        "description": "Circle not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/circles/{id}/contribute": {
            "post": {
                "description": "Contribute moves money from the caller's main account into the circle.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "circles"
                ],
                "summary": "Contribute to a circle",
                "parameters": [
                    {
                        "description": "Circle ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.ContributeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.ContributionResult"
                        }
                    },
                    "400": {
                        "description": "Invalid amount, not a member or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Circle not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/circles/{id}/join": {
            "post": {
                "description": "JoinCircle adds the caller as an active member.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "circles"
                ],
                "summary": "Join a circle",
                "parameters": [
                    {
                        "description": "Circle ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.CircleMember"
                        }
                    },
                    "400": {
                        "description": "Inactive, full or already a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Circle not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/circles/{id}/leave": {
            "post": {
                "description": "LeaveCircle marks the caller's membership as left.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "circles"
                ],
                "summary": "Leave a circle",
                "parameters": [
                    {
                        "description": "Circle ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Not a member",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Circle not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/investments": {
            "post": {
                "description": "AddInvestment buys a position with money from the main account.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Add an investment",
                "parameters": [
                    {
                        "description": "Investment details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.AddInvestmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Investment"
                        }
                    },
                    "400": {
                        "description": "Invalid input or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "GetPortfolio lists the caller's investments with a summary.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "List investments",
                "parameters": [
                    {
                        "description": "Filter by status (active, sold)",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.InvestmentList"
                        }
                    }
                }
            }
        },
        "/investments/{id}/liquidate": {
            "post": {
                "description": "Liquidate sells an investment and credits its value to the main account.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Liquidate an investment",
                "parameters": [
                    {
                        "description": "Investment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.LiquidationResult"
                        }
                    },
                    "400": {
                        "description": "Already sold",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Investment not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/investments/{id}/value": {
            "patch": {
                "description": "UpdateValue revalues an active investment.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "investments"
                ],
                "summary": "Update investment value",
                "parameters": [
                    {
                        "description": "Investment ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "New value",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdateValueRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Investment"
                        }
                    },
                    "400": {
                        "description": "Invalid amount or already sold",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Investment not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/savings/plans": {
            "post": {
                "description": "CreatePlan handles the creation of a savings plan.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "savings"
                ],
                "summary": "Create a savings plan",
                "parameters": [
                    {
                        "description": "Plan details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreatePlanRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.SavingsPlan"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "GetUserPlans lists the caller's savings plans with progress.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "savings"
                ],
                "summary": "List savings plans",
                "parameters": [
                    {
                        "description": "Filter by status (active, completed, paused)",
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/savings/plans/{id}": {
            "patch": {
                "description": "UpdatePlan renames, retargets, pauses or resumes a plan.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "savings"
                ],
                "summary": "Update a savings plan",
                "parameters": [
                    {
                        "description": "Plan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.UpdatePlanRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.SavingsPlan"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Plan not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/savings/plans/{id}/transactions": {
            "post": {
                "description": "RecordTransaction deposits into or withdraws from a plan via the main account.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "savings"
                ],
                "summary": "Deposit or withdraw",
                "parameters": [
                    {
                        "description": "Plan ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Movement details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.SavingsTransactionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.SavingsResult"
                        }
                    },
                    "400": {
                        "description": "Invalid input or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Plan not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/transactions": {
            "post": {
                "description": "CreateTransaction handles the creation of a new transaction.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transactions"
                ],
                "summary": "Create a transaction",
                "parameters": [
                    {
                        "description": "Transaction details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateTransactionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/services.MutationResult"
                        }
                    },
                    "400": {
                        "description": "Invalid input or insufficient balance",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Account not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "GetUserTransactions lists the caller's transactions, newest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transactions"
                ],
                "summary": "List transactions",
                "parameters": [
                    {
                        "description": "Filter by account type (main, stash)",
                        "name": "account_type",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by entry type (credit, debit)",
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Items to return (default 50, max 100)",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Items to skip",
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Server error",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/transactions/{id}": {
            "get": {
                "description": "GetTransactionByID returns one of the caller's transactions.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transactions"
                ],
                "summary": "Get a transaction",
                "parameters": [
                    {
                        "description": "Transaction ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Transaction not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.AddInvestmentRequest": {
            "type": "object",
            "required": [
                "investment_name",
                "investment_type"
            ],
            "properties": {
                "investment_name": {
                    "type": "string"
                },
                "investment_type": {
                    "type": "string"
                },
                "amount_invested": {
                    "type": "string",
                    "example": "100.00"
                },
                "current_value": {
                    "type": "string",
                    "example": "100.00"
                },
                "purchase_date": {
                    "type": "string"
                },
                "maturity_date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handlers.ContributeRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "100.00"
                }
            }
        },
        "handlers.CreateBillRequest": {
            "type": "object",
            "required": [
                "bill_type",
                "biller_name",
                "due_date"
            ],
            "properties": {
                "bill_type": {
                    "type": "string"
                },
                "biller_name": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "due_date": {
                    "type": "string"
                },
                "is_recurring": {
                    "type": "boolean"
                },
                "recurrence_frequency": {
                    "type": "string"
                },
                "account_number": {
                    "type": "string"
                },
                "reference_number": {
                    "type": "string"
                }
            }
        },
        "handlers.CreateCircleRequest": {
            "type": "object",
            "required": [
                "circle_name"
            ],
            "properties": {
                "circle_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "target_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "max_members": {
                    "type": "integer"
                },
                "is_public": {
                    "type": "boolean"
                },
                "category": {
                    "type": "string"
                }
            }
        },
        "handlers.CreatePlanRequest": {
            "type": "object",
            "required": [
                "plan_name",
                "frequency"
            ],
            "properties": {
                "plan_name": {
                    "type": "string"
                },
                "target_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "frequency": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "auto_save": {
                    "type": "boolean"
                }
            }
        },
        "handlers.CreateTransactionRequest": {
            "type": "object",
            "required": [
                "type"
            ],
            "properties": {
                "account_type": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/handlers.ErrorDetail"
                }
            }
        },
        "handlers.SavingsTransactionRequest": {
            "type": "object",
            "required": [
                "transaction_type"
            ],
            "properties": {
                "transaction_type": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "handlers.StashRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handlers.TransferRequest": {
            "type": "object",
            "required": [
                "from_account",
                "to_account"
            ],
            "properties": {
                "from_account": {
                    "type": "string"
                },
                "to_account": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handlers.UpdateBalanceRequest": {
            "type": "object",
            "required": [
                "operation"
            ],
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "operation": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "handlers.UpdatePlanRequest": {
            "type": "object",
            "properties": {
                "plan_name": {
                    "type": "string"
                },
                "target_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "status": {
                    "type": "string"
                },
                "auto_save": {
                    "type": "boolean"
                }
            }
        },
        "handlers.UpdateValueRequest": {
            "type": "object",
            "required": [
                "current_value"
            ],
            "properties": {
                "current_value": {
                    "type": "string",
                    "example": "100.00"
                }
            }
        },
        "models.Account": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_id": {
                    "type": "string"
                },
                "account_type": {
                    "type": "string"
                },
                "balance": {
                    "type": "string",
                    "example": "100.00"
                },
                "currency": {
                    "type": "string"
                }
            }
        },
        "models.Bill": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_id": {
                    "type": "string"
                },
                "bill_type": {
                    "type": "string"
                },
                "biller_name": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "due_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "status": {
                    "type": "string"
                },
                "is_recurring": {
                    "type": "boolean"
                },
                "recurrence_frequency": {
                    "type": "string"
                },
                "account_number": {
                    "type": "string"
                },
                "reference_number": {
                    "type": "string"
                },
                "paid_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.Circle": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "creator_id": {
                    "type": "string"
                },
                "circle_name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "target_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "current_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "member_count": {
                    "type": "integer"
                },
                "max_members": {
                    "type": "integer"
                },
                "is_public": {
                    "type": "boolean"
                },
                "category": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CircleMember"
                    }
                },
                "progress": {
                    "type": "number"
                }
            }
        },
        "models.CircleMember": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "circle_id": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                },
                "contribution_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "status": {
                    "type": "string"
                },
                "joined_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "models.Investment": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_id": {
                    "type": "string"
                },
                "investment_name": {
                    "type": "string"
                },
                "investment_type": {
                    "type": "string"
                },
                "amount_invested": {
                    "type": "string",
                    "example": "100.00"
                },
                "current_value": {
                    "type": "string",
                    "example": "100.00"
                },
                "return_percentage": {
                    "type": "number"
                },
                "purchase_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "maturity_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "models.SavingsPlan": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_id": {
                    "type": "string"
                },
                "plan_name": {
                    "type": "string"
                },
                "target_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "current_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "frequency": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "end_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "auto_save": {
                    "type": "boolean"
                },
                "status": {
                    "type": "string"
                },
                "progress": {
                    "type": "number"
                }
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "user_id": {
                    "type": "string"
                },
                "account_id": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "transaction_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "account_type": {
                    "type": "string"
                }
            }
        },
        "services.ContributionResult": {
            "type": "object",
            "properties": {
                "new_contribution": {
                    "type": "string",
                    "example": "100.00"
                },
                "new_circle_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "new_balance": {
                    "type": "string",
                    "example": "100.00"
                },
                "circle_status": {
                    "type": "string"
                },
                "transaction_id": {
                    "type": "string"
                }
            }
        },
        "services.InvestmentList": {
            "type": "object",
            "properties": {
                "investments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Investment"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/services.PortfolioSummary"
                }
            }
        },
        "services.LiquidationResult": {
            "type": "object",
            "properties": {
                "liquidated_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "new_balance": {
                    "type": "string",
                    "example": "100.00"
                },
                "transaction_id": {
                    "type": "string"
                }
            }
        },
        "services.MutationResult": {
            "type": "object",
            "properties": {
                "account_id": {
                    "type": "string"
                },
                "account_type": {
                    "type": "string"
                },
                "new_balance": {
                    "type": "string",
                    "example": "100.00"
                },
                "transaction_id": {
                    "type": "string"
                }
            }
        },
        "services.PayBillResult": {
            "type": "object",
            "properties": {
                "bill_id": {
                    "type": "string"
                },
                "new_balance": {
                    "type": "string",
                    "example": "100.00"
                },
                "amount_paid": {
                    "type": "string",
                    "example": "100.00"
                },
                "transaction_id": {
                    "type": "string"
                },
                "next_bill_id": {
                    "type": "string"
                }
            }
        },
        "services.PortfolioSummary": {
            "type": "object",
            "properties": {
                "total_invested": {
                    "type": "string",
                    "example": "100.00"
                },
                "total_current_value": {
                    "type": "string",
                    "example": "100.00"
                },
                "total_return_percentage": {
                    "type": "number"
                }
            }
        },
        "services.SavingsResult": {
            "type": "object",
            "properties": {
                "new_plan_amount": {
                    "type": "string",
                    "example": "100.00"
                },
                "new_account_balance": {
                    "type": "string",
                    "example": "100.00"
                },
                "plan_status": {
                    "type": "string"
                },
                "transaction_id": {
                    "type": "string"
                },
                "savings_transaction_id": {
                    "type": "string"
                }
            }
        },
        "services.TransferResult": {
            "type": "object",
            "properties": {
                "from_balance": {
                    "type": "string",
                    "example": "100.00"
                },
                "to_balance": {
                    "type": "string",
                    "example": "100.00"
                },
                "debit_transaction_id": {
                    "type": "string"
                },
                "credit_transaction_id": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "finvault API",
	Description:      "finvault keeps a per-user money ledger with bills, savings plans, savings circles and investments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
