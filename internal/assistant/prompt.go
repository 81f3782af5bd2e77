package assistant

import "fmt"

func fallbackPrompt(message string) string {
	return fmt.Sprintf(`Eres un asistente de ventas útil y amigable.
Responde de forma concisa y profesional.
Si el usuario pregunta por productos específicos, stock, precios o inventario,
menciona que pueden hacer consultas específicas sobre productos disponibles.

El usuario dice: '%s'`, message)
}

const catalogSchema = `
ESQUEMA DE BASE DE DATOS (PostgreSQL):

Tabla: products
- id (BIGINT, PRIMARY KEY)
- name (TEXT)
- quantity (INT)
- sale_price (NUMERIC)
- category_id (BIGINT, FK -> categories.id)
- supplier_id (BIGINT, FK -> suppliers.id)
- expiration_date (DATE)

Tabla: categories
- id (BIGINT, PRIMARY KEY)
- name (TEXT)

Tabla: suppliers
- id (BIGINT, PRIMARY KEY)
- name (TEXT)
- contact (TEXT)

Tabla: inventory_movements
- id (BIGINT, PRIMARY KEY)
- product_id (BIGINT, FK -> products.id)
- movement_type (TEXT: 'entrada' o 'salida')
- quantity (INT)
- occurred_at (TIMESTAMPTZ)
- description (TEXT)
`

func sqlPrompt(question string) string {
	return fmt.Sprintf(`Eres un experto en SQL que ayuda a consultar una base de datos de inventario de alimentos.
%s
PREGUNTA DEL USUARIO: %s

INSTRUCCIONES:
1. Genera una consulta SQL válida de solo lectura (SELECT) para responder la pregunta
2. Usa JOINS cuando sea necesario para obtener información completa
3. Incluye nombres de categorías y proveedores en lugar de solo IDs
4. Limita resultados a 50 filas máximo usando LIMIT
5. Usa ORDER BY para organizar resultados de manera lógica

RESPONDE SOLO CON LA CONSULTA SQL, SIN EXPLICACIONES ADICIONALES.`, catalogSchema, question)
}

func interpretPrompt(question, resultsJSON string) string {
	return fmt.Sprintf(`Eres un asistente especializado en inventario de alimentos que interpreta resultados de base de datos.

PREGUNTA ORIGINAL: %s

RESULTADOS DE LA BASE DE DATOS:
%s

INSTRUCCIONES:
1. Proporciona una respuesta natural y útil en español
2. Resalta información importante como stock bajo, productos próximos a vencer, etc.
3. Si no hay resultados, sugiere alternativas o productos similares
4. Incluye recomendaciones cuando sea apropiado
5. Usa formato claro con bullet points cuando sea necesario
6. Sé específico con números y datos encontrados

RESPUESTA:`, question, resultsJSON)
}
