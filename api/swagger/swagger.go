package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Alumni Mentorship API",
        "description": "Mentor assignment, meeting scheduling and status approval workflow",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Authentication"
        },
        {
            "name": "Phases"
        },
        {
            "name": "Mentorship"
        },
        {
            "name": "Meetings"
        },
        {
            "name": "MeetingStatus"
        },
        {
            "name": "Dashboard"
        },
        {
            "name": "Feedback"
        },
        {
            "name": "Links"
        },
        {
            "name": "Notifications"
        }
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Authenticate user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ]
            }
        },
        "/auth/me": {
            "get": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/phase": {
            "get": {
                "tags": [
                    "Phases"
                ],
                "summary": "List phases",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "Phases"
                ],
                "summary": "Create phase",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreatePhaseRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/phase/active": {
            "get": {
                "tags": [
                    "Phases"
                ],
                "summary": "Current phase",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "412": {
                        "description": "No active phase",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/mentor-mentee/assign": {
            "post": {
                "tags": [
                    "Mentorship"
                ],
                "summary": "Assign mentees to a mentor",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "412": {
                        "description": "No active phase",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AssignMentorRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/mentor-mentee/mentor/{mentorId}": {
            "get": {
                "tags": [
                    "Mentorship"
                ],
                "summary": "Mentees of a mentor",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "mentorId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "phaseId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/mentor-mentee/mentee/{menteeId}": {
            "get": {
                "tags": [
                    "Mentorship"
                ],
                "summary": "Mentor of a mentee",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "menteeId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "phaseId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/meetings/preview-dates": {
            "post": {
                "tags": [
                    "Meetings"
                ],
                "summary": "Preview generated meeting dates",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PreviewDatesRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/meetings/schedule": {
            "post": {
                "tags": [
                    "Meetings"
                ],
                "summary": "Schedule a meeting series",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ScheduleMeetingRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/meetings/mentor/{mentorId}": {
            "get": {
                "tags": [
                    "Meetings"
                ],
                "summary": "Meetings of a mentor",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "mentorId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "phaseId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/meetings/mentee/{menteeId}": {
            "get": {
                "tags": [
                    "Meetings"
                ],
                "summary": "Meetings of a mentee",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "menteeId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "phaseId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/meetings/meeting/{meetingId}": {
            "get": {
                "tags": [
                    "Meetings"
                ],
                "summary": "Meeting occurrence",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "meetingId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "Meetings"
                ],
                "summary": "Reschedule a meeting occurrence",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "meetingId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateMeetingRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/meeting-status/update": {
            "post": {
                "tags": [
                    "MeetingStatus"
                ],
                "summary": "Report meeting outcome",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubmitStatusRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/meeting-status/approve-reject": {
            "post": {
                "tags": [
                    "MeetingStatus"
                ],
                "summary": "Approve or reject a status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ApproveRejectRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/meeting-status/all": {
            "get": {
                "tags": [
                    "MeetingStatus"
                ],
                "summary": "List status records",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "meetingId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "menteeId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "mentorId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "phaseId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "approval",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/dashboard/meetings": {
            "get": {
                "tags": [
                    "Dashboard"
                ],
                "summary": "Meeting status badges",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "phaseId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "mentorId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "menteeId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/feedback": {
            "post": {
                "tags": [
                    "Feedback"
                ],
                "summary": "Submit program feedback",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SubmitFeedbackRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "tags": [
                    "Feedback"
                ],
                "summary": "List program feedback",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "phaseId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "role",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/links": {
            "post": {
                "tags": [
                    "Links"
                ],
                "summary": "Create a signed link",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateLinkRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/links/resolve": {
            "get": {
                "tags": [
                    "Links"
                ],
                "summary": "Resolve a signed link",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "token",
                        "in": "query",
                        "type": "string",
                        "required": true
                    }
                ]
            }
        },
        "/notifications": {
            "get": {
                "tags": [
                    "Notifications"
                ],
                "summary": "List notifications",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "unread",
                        "in": "query",
                        "type": "boolean",
                        "required": false
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/notifications/{id}/read": {
            "post": {
                "tags": [
                    "Notifications"
                ],
                "summary": "Mark notification read",
                "responses": {
                    "204": {
                        "description": "No Content",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
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
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "CreatePhaseRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "startDate",
                "endDate"
            ]
        },
        "AssignMentorRequest": {
            "type": "object",
            "properties": {
                "mentor_user_id": {
                    "type": "string"
                },
                "mentee_user_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "phaseId": {
                    "type": "string"
                }
            },
            "required": [
                "mentor_user_id",
                "mentee_user_ids"
            ]
        },
        "PreviewDatesRequest": {
            "type": "object",
            "properties": {
                "commencement_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "preferred_day": {
                    "type": "string"
                },
                "number_of_meetings": {
                    "type": "integer"
                }
            },
            "required": [
                "commencement_date",
                "end_date",
                "preferred_day",
                "number_of_meetings"
            ]
        },
        "ScheduleMeetingRequest": {
            "type": "object",
            "properties": {
                "mentor_user_id": {
                    "type": "string"
                },
                "mentee_user_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "meeting_dates": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "meeting_time": {
                    "type": "string"
                },
                "duration_minutes": {
                    "type": "integer"
                },
                "platform": {
                    "type": "string"
                },
                "meeting_link": {
                    "type": "string"
                },
                "agenda": {
                    "type": "string"
                },
                "preferred_day": {
                    "type": "string"
                },
                "number_of_meetings": {
                    "type": "integer"
                },
                "phaseId": {
                    "type": "string"
                },
                "commencement_date": {
                    "type": "string"
                },
                "end_date": {
                    "type": "string"
                },
                "custom_dates": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "mentor_user_id",
                "mentee_user_ids",
                "meeting_time",
                "duration_minutes",
                "platform",
                "number_of_meetings"
            ]
        },
        "UpdateMeetingRequest": {
            "type": "object",
            "properties": {
                "meeting_date": {
                    "type": "string"
                },
                "meeting_time": {
                    "type": "string"
                }
            },
            "required": [
                "meeting_date",
                "meeting_time"
            ]
        },
        "SubmitStatusRequest": {
            "type": "object",
            "properties": {
                "mentorEmail": {
                    "type": "string"
                },
                "menteeIds": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "meetingId": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Completed",
                        "Postponed",
                        "Cancelled"
                    ]
                },
                "meetingMinutes": {
                    "type": "string"
                },
                "postponedReason": {
                    "type": "string"
                },
                "phaseId": {
                    "type": "string"
                }
            },
            "required": [
                "mentorEmail",
                "menteeIds",
                "meetingId",
                "status"
            ]
        },
        "ApproveRejectRequest": {
            "type": "object",
            "properties": {
                "statusId": {
                    "type": "string"
                },
                "action": {
                    "type": "string",
                    "enum": [
                        "Approved",
                        "Rejected"
                    ]
                }
            },
            "required": [
                "statusId",
                "action"
            ]
        },
        "SubmitFeedbackRequest": {
            "type": "object",
            "properties": {
                "overall_rating": {
                    "type": "integer"
                },
                "mentor_rating": {
                    "type": "integer"
                },
                "content_rating": {
                    "type": "integer"
                },
                "schedule_rating": {
                    "type": "integer"
                },
                "highlights": {
                    "type": "string"
                },
                "improvements": {
                    "type": "string"
                },
                "comments": {
                    "type": "string"
                },
                "phaseId": {
                    "type": "string"
                }
            },
            "required": [
                "overall_rating",
                "mentor_rating",
                "content_rating",
                "schedule_rating"
            ]
        },
        "CreateLinkRequest": {
            "type": "object",
            "properties": {
                "purpose": {
                    "type": "string",
                    "enum": [
                        "dashboard",
                        "meeting-status",
                        "feedback"
                    ]
                },
                "path": {
                    "type": "string"
                }
            },
            "required": [
                "purpose"
            ]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
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
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
