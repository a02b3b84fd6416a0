// Package docs registra el documento OpenAPI que se sirve en /swagger/doc.json.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registrar doctor",
                "parameters": [
                    {
                        "description": "Datos del doctor",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/doctors.registerRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/doctors.doctorResponse"}},
                    "400": {"description": "invalid input / email already registered", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "Email", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/doctors.tokenResponse"}},
                    "401": {"description": "incorrect email or password", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Doctor autenticado",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/doctors.doctorResponse"}},
                    "401": {"description": "could not validate credentials", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Actualizar perfil",
                "parameters": [
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/doctors.updateProfileRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/doctors.doctorResponse"}},
                    "401": {"description": "could not validate credentials", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/patients": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Listar pacientes del doctor",
                "parameters": [
                    {"type": "integer", "description": "Offset", "name": "skip", "in": "query"},
                    {"type": "integer", "description": "Máximo (1-1000). Por defecto 100", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/patients.patientResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Crear paciente",
                "parameters": [
                    {
                        "description": "Paciente",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/patients.createPatientRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/patients.patientResponse"}},
                    "400": {"description": "invalid input", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/patients/{patientID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Obtener paciente",
                "parameters": [{"type": "integer", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.patientResponse"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Actualizar paciente",
                "parameters": [
                    {"type": "integer", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true},
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/patients.updatePatientRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.patientResponse"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Eliminar paciente",
                "parameters": [{"type": "integer", "description": "ID del paciente", "name": "patientID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageBody"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "409": {"description": "patient has prescriptions", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/medications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Listar medicamentos activos",
                "parameters": [
                    {"type": "integer", "description": "Offset", "name": "skip", "in": "query"},
                    {"type": "integer", "description": "Máximo (1-1000). Por defecto 100", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Filtro exacto por clase", "name": "drug_class", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/medications.medicationResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Crear medicamento",
                "parameters": [
                    {
                        "description": "Medicamento",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/medications.createMedicationRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "400": {"description": "invalid input", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/medications/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Buscar medicamentos",
                "parameters": [
                    {"type": "string", "description": "Texto (nombre o genérico)", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "description": "Máximo (1-50). Por defecto 10", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/medications.searchResultResponse"}}},
                    "400": {"description": "invalid query", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/medications/classes/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Clases farmacológicas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/medications/{medicationID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Obtener medicamento",
                "parameters": [{"type": "integer", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "404": {"description": "medication not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Actualizar medicamento",
                "parameters": [
                    {"type": "integer", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true},
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/medications.updateMedicationRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medications.medicationResponse"}},
                    "404": {"description": "medication not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["medications"],
                "summary": "Eliminar medicamento",
                "parameters": [{"type": "integer", "description": "ID del medicamento", "name": "medicationID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageBody"}},
                    "404": {"description": "medication not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/prescriptions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Listar recetas del doctor",
                "parameters": [
                    {"type": "integer", "description": "Offset", "name": "skip", "in": "query"},
                    {"type": "integer", "description": "Máximo (1-1000). Por defecto 100", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Filtro por paciente", "name": "patient_id", "in": "query"},
                    {"enum": ["draft", "active", "completed", "cancelled"], "type": "string", "description": "Filtro por estado", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/prescriptions.prescriptionResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Crear receta",
                "parameters": [
                    {
                        "description": "Receta",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/prescriptions.createPrescriptionRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/prescriptions.prescriptionResponse"}},
                    "404": {"description": "patient not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/prescriptions/{prescriptionID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Obtener receta",
                "parameters": [{"type": "integer", "description": "ID de la receta", "name": "prescriptionID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/prescriptions.prescriptionResponse"}},
                    "404": {"description": "prescription not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Actualizar receta",
                "parameters": [
                    {"type": "integer", "description": "ID de la receta", "name": "prescriptionID", "in": "path", "required": true},
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/prescriptions.updatePrescriptionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/prescriptions.prescriptionResponse"}},
                    "404": {"description": "prescription not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["prescriptions"],
                "summary": "Eliminar receta",
                "parameters": [{"type": "integer", "description": "ID de la receta", "name": "prescriptionID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageBody"}},
                    "404": {"description": "prescription not found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.ErrorBody": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "httpx.MessageBody": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "doctors.registerRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "full_name": {"type": "string"},
                "specialty": {"type": "string"},
                "workplace": {"type": "string"},
                "medical_license": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "doctors.updateProfileRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "specialty": {"type": "string"},
                "workplace": {"type": "string"},
                "medical_license": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "doctors.doctorResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "specialty": {"type": "string"},
                "workplace": {"type": "string"},
                "medical_license": {"type": "string"},
                "phone": {"type": "string"},
                "is_active": {"type": "boolean"},
                "is_verified": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "doctors.tokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "patients.createPatientRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string", "enum": ["male", "female", "other"]},
                "weight": {"type": "number"},
                "height": {"type": "number"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "diagnosis": {"type": "string"},
                "comorbidities": {"type": "array", "items": {"type": "string"}},
                "lab_results": {"type": "object"},
                "current_medications": {"type": "array", "items": {"type": "object"}},
                "allergies": {"type": "array", "items": {"type": "object"}},
                "previous_anticoagulants": {"type": "array", "items": {"type": "object"}},
                "lifestyle_factors": {"type": "object"},
                "risk_factors": {"type": "object"},
                "social_factors": {"type": "object"}
            }
        },
        "patients.updatePatientRequest": {
            "$ref": "#/definitions/patients.createPatientRequest"
        },
        "patients.patientResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "doctor_id": {"type": "integer"},
                "full_name": {"type": "string"},
                "age": {"type": "integer"},
                "gender": {"type": "string"},
                "weight": {"type": "number"},
                "height": {"type": "number"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "diagnosis": {"type": "string"},
                "comorbidities": {"type": "array", "items": {"type": "string"}},
                "lab_results": {"type": "object"},
                "current_medications": {"type": "array", "items": {"type": "object"}},
                "allergies": {"type": "array", "items": {"type": "object"}},
                "previous_anticoagulants": {"type": "array", "items": {"type": "object"}},
                "lifestyle_factors": {"type": "object"},
                "risk_factors": {"type": "object"},
                "social_factors": {"type": "object"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "medications.createMedicationRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "generic_name": {"type": "string"},
                "drug_class": {"type": "string"},
                "mechanism_of_action": {"type": "string"},
                "available_dosages": {"type": "array", "items": {"type": "string"}},
                "indications": {"type": "array", "items": {"type": "string"}},
                "contraindications": {"type": "array", "items": {"type": "string"}},
                "side_effects": {"type": "array", "items": {"type": "string"}},
                "drug_interactions": {"type": "array", "items": {"type": "object"}},
                "monitoring_parameters": {"type": "array", "items": {"type": "object"}},
                "therapeutic_range": {"type": "object"}
            }
        },
        "medications.updateMedicationRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "generic_name": {"type": "string"},
                "drug_class": {"type": "string"},
                "is_active": {"type": "boolean"}
            }
        },
        "medications.medicationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "generic_name": {"type": "string"},
                "drug_class": {"type": "string"},
                "mechanism_of_action": {"type": "string"},
                "available_dosages": {"type": "array", "items": {"type": "string"}},
                "indications": {"type": "array", "items": {"type": "string"}},
                "contraindications": {"type": "array", "items": {"type": "string"}},
                "side_effects": {"type": "array", "items": {"type": "string"}},
                "drug_interactions": {"type": "array", "items": {"type": "object"}},
                "monitoring_parameters": {"type": "array", "items": {"type": "object"}},
                "therapeutic_range": {"type": "object"},
                "is_active": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "medications.searchResultResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "generic_name": {"type": "string"},
                "drug_class": {"type": "string"},
                "available_dosages": {"type": "array", "items": {"type": "string"}}
            }
        },
        "prescriptions.createPrescriptionRequest": {
            "type": "object",
            "properties": {
                "patient_id": {"type": "integer"},
                "diagnosis": {"type": "string"},
                "recommended_medications": {"type": "array", "items": {"type": "object"}},
                "dosage": {"type": "object"},
                "duration": {"type": "string"},
                "instructions": {"type": "string"},
                "ai_recommendations": {"type": "object"},
                "justification": {"type": "string"},
                "alternative_options": {"type": "array", "items": {"type": "object"}},
                "warnings": {"type": "array", "items": {"type": "string"}},
                "monitoring_plan": {"type": "object"},
                "doctor_notes": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "active", "completed", "cancelled"]},
                "is_ai_generated": {"type": "boolean"}
            }
        },
        "prescriptions.updatePrescriptionRequest": {
            "type": "object",
            "properties": {
                "diagnosis": {"type": "string"},
                "duration": {"type": "string"},
                "instructions": {"type": "string"},
                "patient_feedback": {"type": "string"},
                "doctor_notes": {"type": "string"},
                "status": {"type": "string", "enum": ["draft", "active", "completed", "cancelled"]}
            }
        },
        "prescriptions.prescriptionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "patient_id": {"type": "integer"},
                "doctor_id": {"type": "integer"},
                "diagnosis": {"type": "string"},
                "recommended_medications": {"type": "array", "items": {"type": "object"}},
                "dosage": {"type": "object"},
                "duration": {"type": "string"},
                "instructions": {"type": "string"},
                "ai_recommendations": {"type": "object"},
                "justification": {"type": "string"},
                "alternative_options": {"type": "array", "items": {"type": "object"}},
                "warnings": {"type": "array", "items": {"type": "string"}},
                "monitoring_plan": {"type": "object"},
                "patient_feedback": {"type": "string"},
                "doctor_notes": {"type": "string"},
                "status": {"type": "string"},
                "is_ai_generated": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
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

// SwaggerInfo son los metadatos del documento registrado.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "clinical-rx API",
	Description:      "Backend de recetas clínicas: doctores, pacientes, formulario de medicamentos y recetas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
