package extractor

const styleAnalysisPrompt = `Analyze the following transcript excerpt for the speaker's unique communication style.
Focus on:
1. Syntactical patterns (sentence structure, length, transitions)
2. Vocabulary choices (technical terms, common phrases, industry terms)
3. Tone markers (formality, humor, emotional expression)
4. Engagement patterns (audience interaction, storytelling)
5. Unique characteristics (signature phrases, explanation style)
6. Grammar preferences (active/passive voice, contractions)
7. Content structure (topic introduction, examples, conclusions)

Return a detailed, structured analysis covering each point.`

const postGenerationPrompt = `Based on the speaker's analyzed style, generate an authentic social media post about %s.
Maintain their unique voice characteristics, vocabulary preferences, and structural patterns.`
